package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolvePrefix maps an exact ID or a unique ID prefix to a full ID. Input
// that matches nothing is passed through so the service reports it as not
// found.
func resolvePrefix(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return resolvePrefix("project", input, ids)
}

func resolveResourceID(ctx context.Context, app *App, input string) (string, error) {
	ids, err := resourceIDs(ctx, app)
	if err != nil {
		return "", err
	}
	return resolvePrefix("resource", input, ids)
}

func resolveResourceIDs(ctx context.Context, app *App, inputs []string) ([]string, error) {
	ids, err := resourceIDs(ctx, app)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		id, err := resolvePrefix("resource", in, ids)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func resourceIDs(ctx context.Context, app *App) ([]string, error) {
	resources, err := app.Resources.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return ids, nil
}

// resolveTaskID only searches the given project's tasks. Tasks of other
// projects are left for the service to reject.
func resolveTaskID(ctx context.Context, app *App, projectID, input string) (string, error) {
	tasks, err := app.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolvePrefix("task", input, ids)
}

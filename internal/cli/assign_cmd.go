package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	crewapp "github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAssignCmd(app *App) *cobra.Command {
	var (
		project, task, resource string
		hours                   float64
		actor, file, format     string
		startFlag, endFlag      *dateFlag
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Book a resource onto a task over a date range",
		Long: `Book a resource onto a task. Hours are spread over the range at most
8 per day starting 09:00 UTC; hours that do not fit are reported as
unallocated. --start must be before --end; book a single day with
--start 2024-02-01 --end 2024-02-01T17:00. The request can also be read
from a JSON or YAML file (--file, "-" for stdin).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var req *crewapp.CreateAssignmentRequest
			if file != "" {
				var err error
				req, err = readAssignmentFile(cmd, file, format)
				if err != nil {
					return err
				}
			} else {
				req = &crewapp.CreateAssignmentRequest{
					ProjectID:      project,
					TaskID:         task,
					ResourceID:     resource,
					StartDate:      startFlag.String(),
					EndDate:        endFlag.String(),
					AllocatedHours: hours,
				}
				if err := resolveAssignmentIDs(ctx, app, req); err != nil {
					return err
				}
			}
			if actor != "" {
				req.Actor = actor
			}

			res, err := app.Assignments.CreateAssignment(ctx, *req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAssignmentResult(res))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&project, "project", "", "Project ID or ID prefix")
	flags.StringVar(&task, "task", "", "Task ID or ID prefix within the project")
	flags.StringVar(&resource, "resource", "", "Resource ID or ID prefix")
	startFlag = addDateFlag(flags, "start", "First day of the range (YYYY-MM-DD or RFC3339)")
	endFlag = addDateFlag(flags, "end", "Last day of the range (YYYY-MM-DD or RFC3339)")
	flags.Float64Var(&hours, "hours", 0, "Total hours to allocate")
	flags.StringVar(&actor, "actor", "", "Who is making the change (recorded in the audit log)")
	flags.StringVarP(&file, "file", "f", "", "Read the request from a JSON or YAML file")
	flags.StringVar(&format, "format", "", "Payload format for --file: json or yaml (default from extension)")

	for _, name := range []string{"project", "task", "resource", "start", "end", "hours"} {
		cmd.MarkFlagsMutuallyExclusive("file", name)
	}

	return cmd
}

// readAssignmentFile decodes a request from path, or from stdin when path
// is "-". An explicit format wins over the file extension.
func readAssignmentFile(cmd *cobra.Command, path, format string) (*crewapp.CreateAssignmentRequest, error) {
	payloadFormat := crewapp.FormatFromPath(path)
	if format != "" {
		payloadFormat = crewapp.PayloadFormat(format)
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return crewapp.DecodeCreateAssignment(r, payloadFormat)
}

// resolveAssignmentIDs expands ID prefixes given on the command line.
// Empty fields are left for request validation to report.
func resolveAssignmentIDs(ctx context.Context, app *App, req *crewapp.CreateAssignmentRequest) error {
	var err error
	if req.ProjectID != "" {
		if req.ProjectID, err = resolveProjectID(ctx, app, req.ProjectID); err != nil {
			return err
		}
	}
	if req.TaskID != "" && req.ProjectID != "" {
		if req.TaskID, err = resolveTaskID(ctx, app, req.ProjectID, req.TaskID); err != nil {
			return err
		}
	}
	if req.ResourceID != "" {
		if req.ResourceID, err = resolveResourceID(ctx, app, req.ResourceID); err != nil {
			return err
		}
	}
	return nil
}

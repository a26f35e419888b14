package service

import (
	"context"
	"math"
	"time"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// assignmentInput is a request that passed validation, with its dates
// parsed and every referenced entity loaded.
type assignmentInput struct {
	start    time.Time
	end      time.Time
	hours    float64
	actor    string
	project  *domain.Project
	task     *domain.Task
	resource *domain.Resource
}

// validateRequest checks the request shape without touching storage.
func validateRequest(req *app.CreateAssignmentRequest) (start, end time.Time, err error) {
	if err = req.Validate(); err != nil {
		return
	}
	if math.IsInf(req.AllocatedHours, 0) || math.IsNaN(req.AllocatedHours) {
		err = app.InvalidArgument("allocatedHours must be a finite number")
		return
	}
	if scheduler.BudgetSeconds(req.AllocatedHours) < 1 {
		err = app.InvalidArgument("allocatedHours %v is below the one-second scheduling resolution", req.AllocatedHours)
		return
	}
	if start, err = app.ParseTimestamp("startDate", req.StartDate); err != nil {
		return
	}
	if end, err = app.ParseTimestamp("endDate", req.EndDate); err != nil {
		return
	}
	if !start.Before(end) {
		err = app.InvalidArgument("startDate %s must be before endDate %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return
}

type existenceChecker struct {
	projects  repository.ProjectRepo
	tasks     repository.TaskRepo
	resources repository.ResourceRepo
}

// load fetches the project, task and resource concurrently. The first
// missing entity fails the whole check.
func (c existenceChecker) load(ctx context.Context, req *app.CreateAssignmentRequest) (*domain.Project, *domain.Task, *domain.Resource, error) {
	var (
		project  *domain.Project
		task     *domain.Task
		resource *domain.Resource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.projects.GetByID(gctx, req.ProjectID)
		project = p
		return lookupErr(err, "project", req.ProjectID)
	})
	g.Go(func() error {
		t, err := c.tasks.GetByID(gctx, req.TaskID)
		task = t
		return lookupErr(err, "task", req.TaskID)
	})
	g.Go(func() error {
		r, err := c.resources.GetByID(gctx, req.ResourceID)
		resource = r
		return lookupErr(err, "resource", req.ResourceID)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	if task.ProjectID != project.ID {
		return nil, nil, nil, app.InvalidArgument("task %s belongs to project %s, not %s",
			task.ID, task.ProjectID, project.ID)
	}
	return project, task, resource, nil
}

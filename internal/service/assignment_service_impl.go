package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
)

const useCaseCreateAssignment = "create-assignment"

type assignmentService struct {
	existence existenceChecker
	conflicts conflictDetector
	writer    assignmentWriter
	opts      options
}

func NewAssignmentService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	resources repository.ResourceRepo,
	schedules repository.ScheduleRepo,
	uow db.UnitOfWork,
	opts ...Option,
) AssignmentService {
	return &assignmentService{
		existence: existenceChecker{projects: projects, tasks: tasks, resources: resources},
		conflicts: conflictDetector{schedules: schedules},
		writer:    assignmentWriter{uow: uow},
		opts:      buildOptions(opts),
	}
}

// CreateAssignment validates the request, refuses it when the resource is
// already booked on any requested day, spreads the hours over the range and
// commits the result atomically. Hours that do not fit are reported on the
// result, not as an error.
func (s *assignmentService) CreateAssignment(ctx context.Context, req app.CreateAssignmentRequest) (result *app.CreateAssignmentResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"project":  req.ProjectID,
		"task":     req.TaskID,
		"resource": req.ResourceID,
		"hours":    req.AllocatedHours,
	}
	defer func() {
		s.opts.observe(ctx, useCaseCreateAssignment, startedAt, fields, &err)
	}()

	in, err := s.prepare(ctx, &req)
	if err != nil {
		return nil, err
	}
	if err := s.conflicts.check(ctx, in.resource.ID, in.start, in.end); err != nil {
		return nil, err
	}

	plan := scheduler.PlanHours(in.start, in.end, in.hours)
	now := s.opts.clock()
	assignment := domain.Assignment{
		ID:             s.opts.newID(),
		ProjectID:      in.project.ID,
		TaskID:         in.task.ID,
		ResourceID:     in.resource.ID,
		StartDate:      in.start,
		EndDate:        in.end,
		AllocatedHours: in.hours,
		Status:         domain.AssignmentActive,
		EstimatedCost:  in.resource.EstimateCost(in.hours),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	fields["assignment"] = assignment.ID

	if err := s.writer.write(ctx, &assignment, plan, in.actor, now); err != nil {
		return nil, err
	}

	fields["scheduled_hours"] = plan.ScheduledHours
	fields["unallocated_hours"] = plan.UnallocatedHours
	if plan.UnallocatedHours > 0 {
		s.opts.logger.WarnContext(ctx, "assignment under-allocated",
			"assignment", assignment.ID,
			"resource", assignment.ResourceID,
			"requested_hours", plan.RequestedHours,
			"unallocated_hours", plan.UnallocatedHours,
		)
	}

	return &app.CreateAssignmentResult{
		Assignment:       assignment,
		ScheduledHours:   plan.ScheduledHours,
		UnallocatedHours: plan.UnallocatedHours,
		Warnings:         plan.Warnings,
		Plan:             plan.Days,
	}, nil
}

func (s *assignmentService) prepare(ctx context.Context, req *app.CreateAssignmentRequest) (*assignmentInput, error) {
	start, end, err := validateRequest(req)
	if err != nil {
		return nil, err
	}
	project, task, resource, err := s.existence.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return &assignmentInput{
		start:    start,
		end:      end,
		hours:    req.AllocatedHours,
		actor:    s.opts.actorOr(req.Actor),
		project:  project,
		task:     task,
		resource: resource,
	}, nil
}

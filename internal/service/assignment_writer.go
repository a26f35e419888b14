package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
)

// Audit field names written by the assignment writer.
const (
	auditFieldAssignments      = "assignments"
	auditFieldAssignedResource = "assignedResourceId"
)

// assignmentWriter commits an assignment and everything it touches in one
// transaction: the assignment row, the project and task updates with their
// audit entries, and one time block per planned day.
type assignmentWriter struct {
	uow db.UnitOfWork
}

func (w assignmentWriter) write(ctx context.Context, a *domain.Assignment, plan scheduler.HourPlan, actor string, at time.Time) error {
	err := w.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		assignments := repository.NewSQLiteAssignmentRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		audit := repository.NewSQLiteAuditRepo(tx)
		schedules := repository.NewSQLiteScheduleRepo(tx)

		prevCount, err := assignments.CountByProject(ctx, a.ProjectID)
		if err != nil {
			return err
		}
		task, err := tasks.GetByID(ctx, a.TaskID)
		if err != nil {
			return err
		}

		if err := assignments.Create(ctx, a); err != nil {
			return err
		}
		if err := projects.Touch(ctx, a.ProjectID, at); err != nil {
			return err
		}
		if err := audit.Append(ctx, domain.AuditEntry{
			EntityType: domain.EntityProject,
			EntityID:   a.ProjectID,
			At:         at,
			Actor:      actor,
			Field:      auditFieldAssignments,
			OldValue:   strconv.Itoa(prevCount),
			NewValue:   fmt.Sprintf("%d (+%s)", prevCount+1, a.ID),
		}); err != nil {
			return err
		}

		if err := tasks.SetAssignedResource(ctx, a.TaskID, a.ResourceID, at); err != nil {
			return err
		}
		if err := audit.Append(ctx, domain.AuditEntry{
			EntityType: domain.EntityTask,
			EntityID:   a.TaskID,
			At:         at,
			Actor:      actor,
			Field:      auditFieldAssignedResource,
			OldValue:   task.AssignedResourceLabel(),
			NewValue:   a.ResourceID,
		}); err != nil {
			return err
		}

		for _, day := range plan.Days {
			block := domain.TimeBlock{
				StartTime: day.Start,
				EndTime:   day.End,
				Hours:     day.Hours,
				ProjectID: a.ProjectID,
				TaskID:    a.TaskID,
				Type:      domain.BlockRegular,
				Status:    domain.BlockScheduled,
			}
			if err := schedules.AppendBlock(ctx, a.ResourceID, day.Date, block, at); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return app.Internal(err, "writing assignment "+a.ID)
	}
	return nil
}

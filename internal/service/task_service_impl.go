package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
)

type taskService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	audit    repository.AuditRepo
	uow      db.UnitOfWork
	opts     options
}

func NewTaskService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	audit repository.AuditRepo,
	uow db.UnitOfWork,
	opts ...Option,
) TaskService {
	return &taskService{
		projects: projects,
		tasks:    tasks,
		audit:    audit,
		uow:      uow,
		opts:     buildOptions(opts),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return app.InvalidArgument("task title is required")
	}
	if t.ProjectID == "" {
		return app.InvalidArgument("task project is required")
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		return lookupErr(err, "project", t.ProjectID)
	}
	if t.ID == "" {
		t.ID = s.opts.newID()
	}
	now := s.opts.clock()
	t.CreatedAt = now
	t.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTaskRepo(tx).Create(ctx, t); err != nil {
			return err
		}
		return repository.NewSQLiteAuditRepo(tx).Append(ctx, domain.AuditEntry{
			EntityType: domain.EntityTask,
			EntityID:   t.ID,
			At:         now,
			Actor:      s.opts.actor,
			Field:      "created",
			OldValue:   domain.NotAvailable,
			NewValue:   t.Title,
		})
	})
	if err != nil {
		return app.Internal(err, "creating task")
	}
	return nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "task", id)
	}
	if t.AuditLog, err = s.audit.ListByEntity(ctx, domain.EntityTask, id); err != nil {
		return nil, app.Internal(err, "loading task audit log")
	}
	return t, nil
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, lookupErr(err, "project", projectID)
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, app.Internal(err, "listing tasks")
	}
	return tasks, nil
}

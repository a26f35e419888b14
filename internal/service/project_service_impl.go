package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
)

type projectService struct {
	projects    repository.ProjectRepo
	assignments repository.AssignmentRepo
	audit       repository.AuditRepo
	uow         db.UnitOfWork
	opts        options
}

func NewProjectService(
	projects repository.ProjectRepo,
	assignments repository.AssignmentRepo,
	audit repository.AuditRepo,
	uow db.UnitOfWork,
	opts ...Option,
) ProjectService {
	return &projectService{
		projects:    projects,
		assignments: assignments,
		audit:       audit,
		uow:         uow,
		opts:        buildOptions(opts),
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return app.InvalidArgument("project name is required")
	}
	if p.ID == "" {
		p.ID = s.opts.newID()
	}
	now := s.opts.clock()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return repository.NewSQLiteAuditRepo(tx).Append(ctx, domain.AuditEntry{
			EntityType: domain.EntityProject,
			EntityID:   p.ID,
			At:         now,
			Actor:      s.opts.actor,
			Field:      "created",
			OldValue:   domain.NotAvailable,
			NewValue:   p.Name,
		})
	})
	if err != nil {
		return app.Internal(err, "creating project")
	}
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "project", id)
	}
	if p.Assignments, err = s.assignments.ListByProject(ctx, id); err != nil {
		return nil, app.Internal(err, "loading project assignments")
	}
	if p.AuditLog, err = s.audit.ListByEntity(ctx, domain.EntityProject, id); err != nil {
		return nil, app.Internal(err, "loading project audit log")
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, app.Internal(err, "listing projects")
	}
	return projects, nil
}

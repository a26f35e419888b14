package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Touch(ctx context.Context, id string, at time.Time) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	SetAssignedResource(ctx context.Context, id, resourceID string, at time.Time) error
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Assignment, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
}

// AuditRepo is the append-only audit store, keyed by entity.
type AuditRepo interface {
	Append(ctx context.Context, e domain.AuditEntry) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error)
}

// ScheduleRepo stores per-resource, per-day schedule entries. Date bounds
// are inclusive calendar days; nil means unbounded.
type ScheduleRepo interface {
	AppendBlock(ctx context.Context, resourceID string, date time.Time, block domain.TimeBlock, at time.Time) error
	ListByResource(ctx context.Context, resourceID string, from, to *time.Time) ([]domain.ScheduleEntry, error)
	ListByResources(ctx context.Context, resourceIDs []string, from, to time.Time) (map[string][]domain.ScheduleEntry, error)
	ListCommittedDates(ctx context.Context, resourceID string, from, to time.Time) ([]time.Time, error)
}

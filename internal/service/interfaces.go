package service

import (
	"context"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	// GetByID loads the project with its assignments and audit log.
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	// GetByID loads the task with its audit log.
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
}

type ResourceService interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
}

// AssignmentService books resources onto tasks.
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req app.CreateAssignmentRequest) (*app.CreateAssignmentResult, error)
}

// ScheduleService reads per-resource calendars.
type ScheduleService interface {
	GetResourceSchedule(ctx context.Context, req app.ResourceScheduleRequest) ([]domain.ScheduleEntry, error)
	GetCalendarView(ctx context.Context, req app.CalendarViewRequest) (map[string][]domain.ScheduleEntry, error)
}

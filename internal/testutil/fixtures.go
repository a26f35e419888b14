package testutil

import (
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithAssignedResource(id string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedResourceID = &id
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Resource options
type ResourceOption func(*domain.Resource)

func WithResourceID(id string) ResourceOption {
	return func(r *domain.Resource) {
		r.ID = id
	}
}

func WithHourlyRate(rate string) ResourceOption {
	return func(r *domain.Resource) {
		r.HourlyRate = decimal.RequireFromString(rate)
	}
}

func NewTestResource(name string, opts ...ResourceOption) *domain.Resource {
	now := time.Now().UTC().Truncate(time.Second)
	r := &domain.Resource{
		ID:         uuid.New().String(),
		Name:       name,
		HourlyRate: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestBlock builds a regular scheduled block starting at 09:00 UTC on day.
func NewTestBlock(day time.Time, hours float64, projectID, taskID string) domain.TimeBlock {
	start := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC)
	return domain.TimeBlock{
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
		Hours:     hours,
		ProjectID: projectID,
		TaskID:    taskID,
		Type:      domain.BlockRegular,
		Status:    domain.BlockScheduled,
	}
}

// Date parses a YYYY-MM-DD literal as midnight UTC and panics on bad input.
func Date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

package app

import (
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/scheduler"
)

// CreateAssignmentRequest asks for a resource to be booked on a task for
// AllocatedHours spread over the days from StartDate to EndDate. Dates are
// ISO-8601 text; see ParseTimestamp for the accepted forms.
type CreateAssignmentRequest struct {
	ProjectID      string  `json:"projectId" yaml:"projectId" validate:"required"`
	TaskID         string  `json:"taskId" yaml:"taskId" validate:"required"`
	ResourceID     string  `json:"resourceId" yaml:"resourceId" validate:"required"`
	StartDate      string  `json:"startDate" yaml:"startDate" validate:"required"`
	EndDate        string  `json:"endDate" yaml:"endDate" validate:"required"`
	AllocatedHours float64 `json:"allocatedHours" yaml:"allocatedHours" validate:"gt=0"`
	// Actor is recorded on audit entries. Empty means the configured default.
	Actor string `json:"actor,omitempty" yaml:"actor,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	return validateStruct(r)
}

// CreateAssignmentResult is the stored assignment plus how its hours landed
// on the calendar.
type CreateAssignmentResult struct {
	Assignment       domain.Assignment
	ScheduledHours   float64
	UnallocatedHours float64
	Warnings         []string
	Plan             []scheduler.DayAllocation
}

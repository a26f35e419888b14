package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment binds a resource to a task over a date range. AllocatedHours is
// the requested total and is never reduced to what actually fit the range.
type Assignment struct {
	ID             string
	ProjectID      string
	TaskID         string
	ResourceID     string
	StartDate      time.Time
	EndDate        time.Time
	AllocatedHours float64
	Status         AssignmentStatus
	EstimatedCost  decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

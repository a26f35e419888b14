package domain

import "time"

type Task struct {
	ID                 string
	ProjectID          string
	Title              string
	AssignedResourceID *string
	AuditLog           []AuditEntry
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AssignedResourceLabel returns the assigned resource ID, or NotAvailable
// when the task has never been assigned.
func (t *Task) AssignedResourceLabel() string {
	if t.AssignedResourceID == nil || *t.AssignedResourceID == "" {
		return NotAvailable
	}
	return *t.AssignedResourceID
}

func (t *Task) DisplayID() string {
	return shortID(t.ID)
}

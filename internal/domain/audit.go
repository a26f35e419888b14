package domain

import "time"

// NotAvailable is recorded as the old value of a field that was never set.
const NotAvailable = "N/A"

// AuditEntry records one field change on a project or task.
type AuditEntry struct {
	EntityType EntityType
	EntityID   string
	At         time.Time
	Actor      string
	Field      string
	OldValue   string
	NewValue   string
}

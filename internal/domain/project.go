package domain

import "time"

// Project owns an append-only list of assignments. Assignments and AuditLog
// are only populated by reads that ask for them.
type Project struct {
	ID          string
	Name        string
	Assignments []Assignment
	AuditLog    []AuditEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayID returns the first 8 characters of the ID for table output.
func (p *Project) DisplayID() string {
	return shortID(p.ID)
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

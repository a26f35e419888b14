package domain

import (
	"fmt"
	"time"
)

// TimeBlock is a contiguous slice of a resource's day committed to one task.
type TimeBlock struct {
	StartTime time.Time
	EndTime   time.Time
	Hours     float64
	ProjectID string
	TaskID    string
	Type      TimeBlockType
	Status    TimeBlockStatus
}

// ScheduleEntry holds one resource's committed hours for a single calendar
// day. TotalHours always equals the sum of the block hours.
type ScheduleEntry struct {
	ResourceID string
	Date       time.Time
	TimeBlocks []TimeBlock
	TotalHours float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate rejects blocks that carry no time.
func (b TimeBlock) Validate() error {
	if b.Hours <= 0 {
		return fmt.Errorf("time block hours must be > 0, got %v", b.Hours)
	}
	if !b.EndTime.After(b.StartTime) {
		return fmt.Errorf("time block must end after it starts")
	}
	return nil
}

// BlockHours sums the hours of every block in the entry.
func (e *ScheduleEntry) BlockHours() float64 {
	var total float64
	for _, b := range e.TimeBlocks {
		total += b.Hours
	}
	return total
}

package domain

type AssignmentStatus string

const (
	AssignmentProposed  AssignmentStatus = "proposed"
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// ValidAssignmentStatuses is the canonical set of accepted assignment statuses.
var ValidAssignmentStatuses = map[AssignmentStatus]bool{
	AssignmentProposed:  true,
	AssignmentActive:    true,
	AssignmentCompleted: true,
	AssignmentCancelled: true,
}

type TimeBlockType string

const (
	BlockRegular  TimeBlockType = "regular"
	BlockOvertime TimeBlockType = "overtime"
	BlockTimeOff  TimeBlockType = "time_off"
	BlockOther    TimeBlockType = "other"
)

type TimeBlockStatus string

const (
	BlockScheduled TimeBlockStatus = "scheduled"
	BlockCompleted TimeBlockStatus = "completed"
	BlockCancelled TimeBlockStatus = "cancelled"
)

type EntityType string

const (
	EntityProject EntityType = "project"
	EntityTask    EntityType = "task"
)

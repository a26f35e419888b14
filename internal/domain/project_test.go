package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayID_Truncates(t *testing.T) {
	p := &Project{ID: "550e8400-e29b-41d4-a716-446655440000"}
	assert.Equal(t, "550e8400", p.DisplayID())
}

func TestDisplayID_ShortID(t *testing.T) {
	r := &Resource{ID: "abc"}
	assert.Equal(t, "abc", r.DisplayID())
}

func TestAssignedResourceLabel_Unset(t *testing.T) {
	task := &Task{ID: "t1"}
	assert.Equal(t, NotAvailable, task.AssignedResourceLabel())

	empty := ""
	task.AssignedResourceID = &empty
	assert.Equal(t, NotAvailable, task.AssignedResourceLabel())
}

func TestAssignedResourceLabel_Set(t *testing.T) {
	rid := "r-42"
	task := &Task{ID: "t1", AssignedResourceID: &rid}
	assert.Equal(t, "r-42", task.AssignedResourceLabel())
}

func TestEstimateCost_RoundsToCents(t *testing.T) {
	r := &Resource{HourlyRate: decimal.RequireFromString("10.333")}
	assert.Equal(t, "31.00", r.EstimateCost(3).StringFixed(2))
}

func TestEstimateCost_ZeroRate(t *testing.T) {
	r := &Resource{}
	assert.True(t, r.EstimateCost(40).IsZero())
}

func TestTimeBlock_Validate(t *testing.T) {
	nine := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, TimeBlock{StartTime: nine, EndTime: nine.Add(4 * time.Hour), Hours: 4}.Validate())
	assert.Error(t, TimeBlock{StartTime: nine, EndTime: nine, Hours: 0}.Validate())
	assert.Error(t, TimeBlock{StartTime: nine, EndTime: nine, Hours: 2}.Validate(), "zero-length interval")
}

func TestScheduleEntry_BlockHours(t *testing.T) {
	e := ScheduleEntry{TimeBlocks: []TimeBlock{{Hours: 4}, {Hours: 2.5}}}
	assert.Equal(t, 6.5, e.BlockHours())
}

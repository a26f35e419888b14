package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(date string, hour int) time.Time {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestPlanHours_SpillsIntoSecondDay(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-02", 0), 12)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, 8.0, plan.Days[0].Hours)
	assert.Equal(t, at("2024-02-01", 9), plan.Days[0].Start)
	assert.Equal(t, at("2024-02-01", 17), plan.Days[0].End)
	assert.Equal(t, 4.0, plan.Days[1].Hours)
	assert.Equal(t, at("2024-02-02", 9), plan.Days[1].Start)
	assert.Equal(t, at("2024-02-02", 13), plan.Days[1].End)
	assert.Empty(t, plan.Warnings)
	assert.Equal(t, 12.0, plan.ScheduledHours)
	assert.Zero(t, plan.UnallocatedHours)
}

func TestPlanHours_FitsInFirstDay(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-02", 0), 5)

	require.Len(t, plan.Days, 1, "a day that receives no hours produces no allocation")
	assert.Equal(t, 5.0, plan.Days[0].Hours)
	assert.Equal(t, at("2024-02-01", 9), plan.Days[0].Start)
	assert.Equal(t, at("2024-02-01", 14), plan.Days[0].End)
	assert.Empty(t, plan.Warnings)
}

func TestPlanHours_ExceedsRangeCapacity(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-02", 0), 20)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, 8.0, plan.Days[0].Hours)
	assert.Equal(t, 8.0, plan.Days[1].Hours)
	assert.Equal(t, 16.0, plan.ScheduledHours)
	assert.Equal(t, 4.0, plan.UnallocatedHours)
	assert.Equal(t, 20.0, plan.RequestedHours)
	assert.Equal(t, []string{"4 hours unallocated"}, plan.Warnings)
}

func TestPlanHours_IgnoresTimeOfDay(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 15), at("2024-02-01", 18), 6)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, at("2024-02-01", 9), plan.Days[0].Start, "blocks always start at the workday start")
	assert.Equal(t, at("2024-02-01", 15), plan.Days[0].End)
}

func TestPlanHours_NormalizesToUTC(t *testing.T) {
	plus5 := time.FixedZone("UTC+5", 5*3600)
	start := time.Date(2024, 2, 2, 2, 0, 0, 0, plus5) // 2024-02-01T21:00Z

	plan := PlanHours(start, start.Add(time.Hour), 3)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, at("2024-02-01", 0), plan.Days[0].Date)
}

func TestPlanHours_FractionalHours(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-03", 0), 10.5)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, 2.5, plan.Days[1].Hours)
	assert.Equal(t, at("2024-02-02", 11).Add(30*time.Minute), plan.Days[1].End)
	assert.Empty(t, plan.Warnings)
}

func TestPlanHours_FloatDriftIsNotReported(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-01", 0), 0.1+0.2)

	assert.Empty(t, plan.Warnings)
	assert.Zero(t, plan.UnallocatedHours)
}

func TestPlanHours_EndBeforeStart_SchedulesNothing(t *testing.T) {
	plan := PlanHours(at("2024-02-02", 0), at("2024-02-01", 0), 4)

	assert.Empty(t, plan.Days)
	assert.Equal(t, 4.0, plan.UnallocatedHours)
}

func TestDaysInRange_Inclusive(t *testing.T) {
	days := DaysInRange(at("2024-02-28", 10), at("2024-03-01", 1))

	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, FormatDates(days))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "4", FormatHours(4))
	assert.Equal(t, "2.5", FormatHours(2.5))
	assert.Equal(t, "0.33", FormatHours(1.0/3))
}

func TestPlanHours_DecimalBudgetKeepsExactSeconds(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-01", 0), 0.7)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, 0.7, plan.Days[0].Hours)
	assert.Equal(t, at("2024-02-01", 9).Add(42*time.Minute), plan.Days[0].End)
	assert.Empty(t, plan.Warnings)
}

func TestPlanHours_SecondsSpillIntoNextDay(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-02", 0), 8.01)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, 8.0, plan.Days[0].Hours)
	assert.Equal(t, 0.01, plan.Days[1].Hours)
	assert.Equal(t, at("2024-02-02", 9).Add(36*time.Second), plan.Days[1].End)
	assert.Empty(t, plan.Warnings)
}

func TestPlanHours_SubSecondTailIsUnallocated(t *testing.T) {
	// 8.0001h is 8h plus 0.36s: the tail cannot form a block of its own.
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-02", 0), 8.0001)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, 8.0, plan.ScheduledHours)
	assert.InDelta(t, 0.0001, plan.UnallocatedHours, 1e-12)
	assert.Equal(t, []string{"0.0001 hours unallocated"}, plan.Warnings)
}

func TestPlanHours_TinyOverrunOnFullDayIsReported(t *testing.T) {
	plan := PlanHours(at("2024-02-01", 0), at("2024-02-01", 0), 8.0000000005)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, 8.0, plan.ScheduledHours)
	assert.InDelta(t, 5e-10, plan.UnallocatedHours, 1e-12)
	assert.Len(t, plan.Warnings, 1)
}

func TestPlanHours_BudgetBelowResolutionSchedulesNothing(t *testing.T) {
	plan := PlanHours(at("2024-03-01", 0), at("2024-03-02", 0), 1e-10)

	assert.Empty(t, plan.Days)
	assert.Zero(t, plan.ScheduledHours)
	assert.Equal(t, 1e-10, plan.UnallocatedHours)
	assert.Equal(t, []string{"1e-10 hours unallocated"}, plan.Warnings)
}

func TestPlanHours_WideRangeStopsOnceBudgetIsPlaced(t *testing.T) {
	start := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	plan := PlanHours(start, end, 8)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, start, plan.Days[0].Date)
	assert.Empty(t, plan.Warnings)
}

func TestBudgetSeconds(t *testing.T) {
	tests := []struct {
		hours float64
		want  int64
	}{
		{8, 28800},
		{0.7, 2520},
		{0.1 + 0.2, 1080},
		{1.0 / 3, 1200},
		{0.0001, 0},
		{1e-10, 0},
		{0, 0},
		{-2, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{1e300, math.MaxInt64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BudgetSeconds(tt.hours), "hours=%v", tt.hours)
	}
}

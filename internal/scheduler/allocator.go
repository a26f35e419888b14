package scheduler

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	// DailyCapacityHours is the most hours one resource takes on per day.
	DailyCapacityHours = 8.0
	// WorkdayStartHour is when every time block begins, in UTC.
	WorkdayStartHour = 9
)

// Hours are planned in whole seconds, the resolution of a stored block.
const (
	secondsPerHour  = 3600
	capacitySeconds = int64(DailyCapacityHours * secondsPerHour)
	// secondEpsilon keeps 0.7h (2519.9999999999995s) from flooring to 2519s.
	secondEpsilon = 1e-6
	// hourEpsilon is relative to the budget and only absorbs the rounding of
	// seconds back into hours.
	hourEpsilon = 1e-12
)

// DayAllocation is the hours given to one calendar day and the block
// interval they occupy.
type DayAllocation struct {
	Date  time.Time
	Hours float64
	Start time.Time
	End   time.Time
}

// HourPlan is the per-day distribution of a requested hour budget.
// Days that receive nothing are omitted.
type HourPlan struct {
	Days             []DayAllocation
	RequestedHours   float64
	ScheduledHours   float64
	UnallocatedHours float64
	Warnings         []string
}

// PlanHours spreads hours across every day from start to end inclusive,
// filling each day up to DailyCapacityHours before moving to the next.
// Each day receives whole seconds. Whatever does not fit the range,
// including a sub-second tail, is reported as UnallocatedHours with a
// warning; this is never an error.
func PlanHours(start, end time.Time, hours float64) HourPlan {
	plan := HourPlan{RequestedHours: hours}
	remaining := BudgetSeconds(hours)

	var scheduled int64
	last := DayOf(end)
	for day := DayOf(start); remaining > 0 && !day.After(last); day = day.AddDate(0, 0, 1) {
		daySeconds := min(remaining, capacitySeconds)
		remaining -= daySeconds
		scheduled += daySeconds

		blockStart := day.Add(WorkdayStartHour * time.Hour)
		plan.Days = append(plan.Days, DayAllocation{
			Date:  day,
			Hours: float64(daySeconds) / secondsPerHour,
			Start: blockStart,
			End:   blockStart.Add(time.Duration(daySeconds) * time.Second),
		})
	}
	plan.ScheduledHours = float64(scheduled) / secondsPerHour

	if leftover := hours - plan.ScheduledHours; leftover > hourEpsilon*math.Max(1, hours) {
		plan.UnallocatedHours = leftover
		plan.Warnings = append(plan.Warnings, fmt.Sprintf("%s hours unallocated", formatShortfall(leftover)))
	}
	return plan
}

// BudgetSeconds is the number of whole seconds PlanHours can place for the
// given hours. Zero means the budget is below the scheduling resolution.
func BudgetSeconds(hours float64) int64 {
	if !(hours > 0) || math.IsInf(hours, 1) {
		return 0
	}
	secs := math.Floor(hours*secondsPerHour + secondEpsilon)
	if secs >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(secs)
}

// formatShortfall keeps tiny leftovers visible instead of rounding them to "0".
func formatShortfall(h float64) string {
	if s := FormatHours(h); s != "0" {
		return s
	}
	return strconv.FormatFloat(h, 'g', 3, 64)
}

// HoursToDuration converts fractional hours to a duration, rounded to the
// nearest second.
func HoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h*3600)) * time.Second
}

// FormatHours renders hours without trailing zeros ("4", "2.5").
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

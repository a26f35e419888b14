package scheduler

import "time"

// DateLayout is the storage and display format for calendar days.
const DateLayout = "2006-01-02"

// DayOf truncates t to midnight of its calendar day in UTC, the fixed
// reference timezone for all scheduling.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInRange returns every calendar day from start to end inclusive,
// ignoring time of day. It returns nil when end falls on a day before start.
func DaysInRange(start, end time.Time) []time.Time {
	first, last := DayOf(start), DayOf(end)
	if last.Before(first) {
		return nil
	}
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// FormatDates renders days in DateLayout, preserving order.
func FormatDates(days []time.Time) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(DateLayout)
	}
	return out
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
)

// conflictDetector enforces day-level exclusivity: a resource with any
// schedule entry inside the requested days cannot take a new assignment.
type conflictDetector struct {
	schedules repository.ScheduleRepo
}

func (d conflictDetector) check(ctx context.Context, resourceID string, start, end time.Time) error {
	dates, err := d.schedules.ListCommittedDates(ctx, resourceID, scheduler.DayOf(start), scheduler.DayOf(end))
	if err != nil {
		return app.Internal(err, "checking schedule conflicts")
	}
	if len(dates) == 0 {
		return nil
	}

	days := scheduler.FormatDates(dates)
	return app.FailedPrecondition("resource %s is already scheduled on %s",
		resourceID, strings.Join(days, ", ")).
		WithDetail("resourceId", resourceID).
		WithDetail("dates", days)
}

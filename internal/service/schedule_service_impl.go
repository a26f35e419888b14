package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
)

const (
	useCaseResourceSchedule = "resource-schedule"
	useCaseCalendarView     = "calendar-view"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	opts      options
}

func NewScheduleService(schedules repository.ScheduleRepo, opts ...Option) ScheduleService {
	return &scheduleService{schedules: schedules, opts: buildOptions(opts)}
}

// GetResourceSchedule returns the resource's entries by ascending date.
// Bounds are inclusive calendar days; an empty bound is open. A start day
// after the end day selects nothing.
func (s *scheduleService) GetResourceSchedule(ctx context.Context, req app.ResourceScheduleRequest) (entries []domain.ScheduleEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"resource": req.ResourceID}
	defer func() {
		fields["entries"] = len(entries)
		s.opts.observe(ctx, useCaseResourceSchedule, startedAt, fields, &err)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	from, err := app.ParseOptionalTimestamp("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	to, err := app.ParseOptionalTimestamp("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if from != nil {
		d := scheduler.DayOf(*from)
		from = &d
	}
	if to != nil {
		d := scheduler.DayOf(*to)
		to = &d
	}
	if from != nil && to != nil && to.Before(*from) {
		return []domain.ScheduleEntry{}, nil
	}

	entries, err = s.schedules.ListByResource(ctx, req.ResourceID, from, to)
	if err != nil {
		return nil, app.Internal(err, "reading resource schedule")
	}
	if entries == nil {
		entries = []domain.ScheduleEntry{}
	}
	return entries, nil
}

// GetCalendarView returns every requested resource's entries within
// [StartDate, EndDate], keyed by resource ID. Each distinct ID gets a key
// even when it has no entries.
func (s *scheduleService) GetCalendarView(ctx context.Context, req app.CalendarViewRequest) (view map[string][]domain.ScheduleEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"resources": len(req.ResourceIDs)}
	defer func() {
		s.opts.observe(ctx, useCaseCalendarView, startedAt, fields, &err)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, err := app.ParseTimestamp("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := app.ParseTimestamp("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, app.InvalidArgument("startDate %s is after endDate %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	ids := uniqueIDs(req.ResourceIDs)
	view, err = s.schedules.ListByResources(ctx, ids, scheduler.DayOf(start), scheduler.DayOf(end))
	if err != nil {
		return nil, app.Internal(err, "reading calendar view")
	}
	return view, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

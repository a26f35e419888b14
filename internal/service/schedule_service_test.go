package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResourceSchedule_UnboundedReturnsCreatedEntriesInOrder(t *testing.T) {
	h := newHarness(t)
	s := h.seed(t)
	assignments := h.assignmentService(testutil.NewTestUoW(h.db))
	ctx := context.Background()

	// Created out of calendar order on purpose.
	_, err := assignments.CreateAssignment(ctx, requestFor(s, "2024-03-10", "2024-03-11", 10))
	require.NoError(t, err)
	_, err = assignments.CreateAssignment(ctx, requestFor(s, "2024-03-01", "2024-03-02", 16))
	require.NoError(t, err)

	entries, err := h.scheduleService().GetResourceSchedule(ctx, app.ResourceScheduleRequest{ResourceID: s.resource.ID})
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Date.Format("2006-01-02"))
	}
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-10", "2024-03-11"}, got)
}

func TestGetResourceSchedule_InclusiveBounds(t *testing.T) {
	h := newHarness(t)
	s := h.seed(t)
	ctx := context.Background()
	_, err := h.assignmentService(testutil.NewTestUoW(h.db)).
		CreateAssignment(ctx, requestFor(s, "2024-03-01", "2024-03-05", 40))
	require.NoError(t, err)
	svc := h.scheduleService()

	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"both bounds inclusive", "2024-03-02", "2024-03-04", 3},
		{"time of day ignored", "2024-03-02T23:59:00Z", "2024-03-04T00:01:00Z", 3},
		{"open start", "", "2024-03-02", 2},
		{"open end", "2024-03-04", "", 2},
		{"single day", "2024-03-03", "2024-03-03", 1},
		{"outside", "2024-04-01", "2024-04-30", 0},
		{"start after end", "2024-03-04", "2024-03-02", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := svc.GetResourceSchedule(ctx, app.ResourceScheduleRequest{
				ResourceID: s.resource.ID, StartDate: tt.start, EndDate: tt.end,
			})
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestGetResourceSchedule_InvalidArguments(t *testing.T) {
	h := newHarness(t)
	counting := &countingScheduleRepo{ScheduleRepo: h.schedules}
	svc := NewScheduleService(counting)
	ctx := context.Background()

	_, err := svc.GetResourceSchedule(ctx, app.ResourceScheduleRequest{})
	assert.Equal(t, app.ErrInvalidArgument, app.CodeOf(err))

	_, err = svc.GetResourceSchedule(ctx, app.ResourceScheduleRequest{ResourceID: "r1", StartDate: "yesterday"})
	assert.Equal(t, app.ErrInvalidArgument, app.CodeOf(err))

	_, err = svc.GetResourceSchedule(ctx, app.ResourceScheduleRequest{ResourceID: "r1", EndDate: "2024/03/01"})
	assert.Equal(t, app.ErrInvalidArgument, app.CodeOf(err))

	assert.Zero(t, counting.reads)
}

func TestGetCalendarView_KeysEveryRequestedResource(t *testing.T) {
	h := newHarness(t)
	s := h.seed(t)
	idle := h.addResource(t, "Katherine")
	ctx := context.Background()
	_, err := h.assignmentService(testutil.NewTestUoW(h.db)).
		CreateAssignment(ctx, requestFor(s, "2024-03-01", "2024-03-03", 20))
	require.NoError(t, err)

	view, err := h.scheduleService().GetCalendarView(ctx, app.CalendarViewRequest{
		ResourceIDs: []string{s.resource.ID, idle.ID, s.resource.ID, "never-created"},
		StartDate:   "2024-03-02",
		EndDate:     "2024-03-31",
	})
	require.NoError(t, err)
	require.Len(t, view, 3, "duplicates collapse to one key")
	assert.Len(t, view[s.resource.ID], 2)
	assert.NotNil(t, view[idle.ID])
	assert.Empty(t, view[idle.ID])
	assert.Empty(t, view["never-created"])
	assert.Equal(t, 8.0, view[s.resource.ID][0].TotalHours)
	assert.Equal(t, 4.0, view[s.resource.ID][1].TotalHours)
}

func TestGetCalendarView_RejectsBeforeQuerying(t *testing.T) {
	h := newHarness(t)
	counting := &countingScheduleRepo{ScheduleRepo: h.schedules}
	svc := NewScheduleService(counting)
	ctx := context.Background()

	tooMany := make([]string, app.MaxCalendarResources+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("r%d", i)
	}

	tests := []struct {
		name string
		req  app.CalendarViewRequest
	}{
		{"31 resources", app.CalendarViewRequest{ResourceIDs: tooMany, StartDate: "2024-03-01", EndDate: "2024-03-31"}},
		{"no resources", app.CalendarViewRequest{StartDate: "2024-03-01", EndDate: "2024-03-31"}},
		{"missing start", app.CalendarViewRequest{ResourceIDs: []string{"r1"}, EndDate: "2024-03-31"}},
		{"bad end", app.CalendarViewRequest{ResourceIDs: []string{"r1"}, StartDate: "2024-03-01", EndDate: "end of month"}},
		{"start after end", app.CalendarViewRequest{ResourceIDs: []string{"r1"}, StartDate: "2024-03-31", EndDate: "2024-03-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetCalendarView(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, app.ErrInvalidArgument, app.CodeOf(err))
		})
	}
	assert.Zero(t, counting.reads, "invalid requests never reach the store")
}

func TestGetCalendarView_ThirtyResourcesAllowed(t *testing.T) {
	h := newHarness(t)
	svc := h.scheduleService()

	ids := make([]string, app.MaxCalendarResources)
	for i := range ids {
		ids[i] = fmt.Sprintf("r%d", i)
	}
	view, err := svc.GetCalendarView(context.Background(), app.CalendarViewRequest{
		ResourceIDs: ids, StartDate: "2024-03-01", EndDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Len(t, view, app.MaxCalendarResources)
}

func TestScheduleService_ReportsUseCases(t *testing.T) {
	h := newHarness(t)
	obs := &recordingObserver{}
	svc := h.scheduleService(WithObservers(nil, obs))
	ctx := context.Background()

	_, err := svc.GetResourceSchedule(ctx, app.ResourceScheduleRequest{ResourceID: "r1"})
	require.NoError(t, err)
	_, err = svc.GetCalendarView(ctx, app.CalendarViewRequest{})
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "resource-schedule", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 0, obs.events[0].Fields["entries"])
	assert.Equal(t, "calendar-view", obs.events[1].Name)
	assert.False(t, obs.events[1].Success)
}

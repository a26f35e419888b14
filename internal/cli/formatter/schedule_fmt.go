package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/scheduler"
)

// FormatAssignmentResult summarizes a created assignment and its day plan.
func FormatAssignmentResult(res *app.CreateAssignmentResult) string {
	a := res.Assignment
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("✔ Assigned"), a.ID))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("RANGE    "), Day(a.StartDate)+" → "+Day(a.EndDate)))
	b.WriteString(fmt.Sprintf("%s  %s of %s\n", StyleDim.Render("SCHEDULED"), Hours(res.ScheduledHours), Hours(a.AllocatedHours)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COST     "), Money(a.EstimatedCost)))

	if len(res.Plan) > 0 {
		rows := make([][]string, 0, len(res.Plan))
		for _, d := range res.Plan {
			rows = append(rows, []string{Day(d.Date), Clock(d.Start) + "–" + Clock(d.End), Hours(d.Hours)})
		}
		b.WriteString("\n" + Table{
			Headers:    []string{"DATE", "BLOCK", "HOURS"},
			Rows:       rows,
			RightAlign: map[int]bool{2: true},
		}.Render())
	}
	for _, w := range res.Warnings {
		b.WriteString(StyleYellow.Render("⚠ "+w) + "\n")
	}
	return RenderBox("Assignment", b.String())
}

// FormatSchedule lists one resource's entries with every block.
func FormatSchedule(resourceID string, entries []domain.ScheduleEntry) string {
	if len(entries) == 0 {
		return RenderBox("Schedule "+resourceID, Dim("Nothing scheduled."))
	}
	var rows [][]string
	for _, e := range entries {
		for i, blk := range e.TimeBlocks {
			day, total := "", ""
			if i == 0 {
				day = Day(e.Date)
				total = LoadStyle(e.TotalHours).Render(Hours(e.TotalHours))
			}
			rows = append(rows, []string{
				day,
				Clock(blk.StartTime) + "–" + Clock(blk.EndTime),
				Hours(blk.Hours),
				TruncID(blk.ProjectID),
				TruncID(blk.TaskID),
				string(blk.Type),
				total,
			})
		}
	}
	return RenderBox("Schedule "+resourceID, Table{
		Headers:    []string{"DATE", "BLOCK", "HOURS", "PROJECT", "TASK", "TYPE", "DAY TOTAL"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true, 6: true},
	}.Render())
}

// FormatCalendar renders a grid of resources by day showing booked hours.
// Resources appear in the order given; days span start to end inclusive.
func FormatCalendar(resourceIDs []string, view map[string][]domain.ScheduleEntry, start, end time.Time) string {
	days := scheduler.DaysInRange(start, end)
	headers := make([]string, 0, len(days)+1)
	headers = append(headers, "RESOURCE")
	align := make(map[int]bool, len(days))
	for i, d := range days {
		headers = append(headers, d.Format("01-02"))
		align[i+1] = true
	}

	seen := make(map[string]bool, len(resourceIDs))
	var rows [][]string
	for _, id := range resourceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		booked := make(map[string]float64, len(view[id]))
		for _, e := range view[id] {
			booked[Day(e.Date)] = e.TotalHours
		}
		row := []string{id}
		for _, d := range days {
			h, ok := booked[Day(d)]
			if !ok {
				row = append(row, Dim("·"))
				continue
			}
			row = append(row, LoadStyle(h).Render(scheduler.FormatHours(h)))
		}
		rows = append(rows, row)
	}

	title := fmt.Sprintf("Calendar %s → %s", Day(start), Day(end))
	return RenderBox(title, Table{Headers: headers, Rows: rows, RightAlign: align}.Render())
}

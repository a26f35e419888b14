package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/crewplan/internal/domain"
)

// FormatProjectList renders projects as a boxed table.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.ID, Bold(p.Name), Timestamp(p.UpdatedAt)})
	}
	return RenderBox("Projects", RenderTable([]string{"ID", "NAME", "UPDATED"}, rows))
}

// FormatProjectDetail renders a project card with its assignments and audit trail.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), p.ID))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED"), Timestamp(p.CreatedAt)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED"), Timestamp(p.UpdatedAt)))

	b.WriteString("\n" + Header("Assignments") + "\n")
	if len(p.Assignments) == 0 {
		b.WriteString(Dim("No assignments yet.") + "\n")
	} else {
		b.WriteString(FormatAssignmentTable(p.Assignments))
	}

	b.WriteString("\n" + Header("Audit log") + "\n")
	b.WriteString(FormatAuditLog(p.AuditLog))
	return RenderBox("Project", b.String())
}

// FormatAssignmentTable lists assignments with their booked range and cost.
func FormatAssignmentTable(assignments []domain.Assignment) string {
	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, []string{
			TruncID(a.ID),
			TruncID(a.TaskID),
			TruncID(a.ResourceID),
			Day(a.StartDate) + " → " + Day(a.EndDate),
			Hours(a.AllocatedHours),
			Money(a.EstimatedCost),
			StatusPill(a.Status),
		})
	}
	return Table{
		Headers:    []string{"ID", "TASK", "RESOURCE", "RANGE", "HOURS", "COST", "STATUS"},
		Rows:       rows,
		RightAlign: map[int]bool{4: true, 5: true},
	}.Render()
}

// FormatAuditLog renders audit entries oldest first.
func FormatAuditLog(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return Dim("No changes recorded.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Timestamp(e.At),
			e.Actor,
			e.Field,
			Dim(e.OldValue) + " → " + e.NewValue,
		})
	}
	return RenderTable([]string{"AT", "ACTOR", "FIELD", "CHANGE"}, rows)
}

// FormatTaskList renders a project's tasks and who they are assigned to.
func FormatTaskList(tasks []*domain.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{t.ID, Bold(t.Title), t.AssignedResourceLabel()})
	}
	return RenderBox("Tasks", RenderTable([]string{"ID", "TITLE", "RESOURCE"}, rows))
}

// FormatTaskDetail renders a task card with its audit trail.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(t.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), t.ID))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PROJECT "), t.ProjectID))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("RESOURCE"), t.AssignedResourceLabel()))
	b.WriteString("\n" + Header("Audit log") + "\n")
	b.WriteString(FormatAuditLog(t.AuditLog))
	return RenderBox("Task", b.String())
}

// FormatResourceList renders resources with their hourly rate.
func FormatResourceList(resources []*domain.Resource) string {
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{r.ID, Bold(r.Name), Money(r.HourlyRate)})
	}
	return RenderBox("Resources", Table{
		Headers:    []string{"ID", "NAME", "RATE"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true},
	}.Render())
}

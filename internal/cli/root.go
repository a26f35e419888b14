package cli

import (
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Tasks       service.TaskService
	Resources   service.ResourceService
	Assignments service.AssignmentService
	Schedules   service.ScheduleService
}

// NewRootCmd creates the top-level "crewplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "crewplan",
		Short:         "Book resources onto project tasks and read their calendars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newResourceCmd(app),
		newAssignCmd(app),
		newScheduleCmd(app),
		newCalendarCmd(app),
	)

	return root
}

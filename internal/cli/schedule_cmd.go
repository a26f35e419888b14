package cli

import (
	"fmt"

	crewapp "github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var startFlag, endFlag *dateFlag

	cmd := &cobra.Command{
		Use:   "schedule RESOURCE",
		Short: "Show a resource's booked days and time blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resourceID, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}

			entries, err := app.Schedules.GetResourceSchedule(ctx, crewapp.ResourceScheduleRequest{
				ResourceID: resourceID,
				StartDate:  startFlag.String(),
				EndDate:    endFlag.String(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchedule(resourceID, entries))
			return nil
		},
	}

	startFlag = addDateFlag(cmd.Flags(), "start", "First day to include (default: unbounded)")
	endFlag = addDateFlag(cmd.Flags(), "end", "Last day to include (default: unbounded)")

	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	var startFlag, endFlag *dateFlag

	cmd := &cobra.Command{
		Use:   "calendar RESOURCE...",
		Short: "Show booked hours per day for several resources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resourceIDs, err := resolveResourceIDs(ctx, app, args)
			if err != nil {
				return err
			}

			view, err := app.Schedules.GetCalendarView(ctx, crewapp.CalendarViewRequest{
				ResourceIDs: resourceIDs,
				StartDate:   startFlag.String(),
				EndDate:     endFlag.String(),
			})
			if err != nil {
				return err
			}

			// Both bounds were accepted by the service, so they parse.
			start, _ := crewapp.ParseTimestamp("startDate", startFlag.String())
			end, _ := crewapp.ParseTimestamp("endDate", endFlag.String())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalendar(resourceIDs, view, start, end))
			return nil
		},
	}

	startFlag = addDateFlag(cmd.Flags(), "start", "First day of the grid")
	endFlag = addDateFlag(cmd.Flags(), "end", "Last day of the grid")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

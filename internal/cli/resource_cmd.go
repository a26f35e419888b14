package cli

import (
	"fmt"

	"github.com/alexanderramin/crewplan/internal/cli/formatter"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage bookable resources",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var name, rate string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a resource with an hourly rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			hourly, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", rate, err)
			}

			r := &domain.Resource{Name: name, HourlyRate: hourly}
			if err := app.Resources.Create(cmd.Context(), r); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created resource %s [%s] at %s/h\n", r.Name, r.ID, formatter.Money(r.HourlyRate))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().StringVar(&rate, "rate", "0", "Hourly rate, e.g. 95.50")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := app.Resources.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(resources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No resources found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResourceList(resources))
			return nil
		},
	}
}

package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := app.requireUser(ctx, "dashboard")
			if err != nil {
				return err
			}
			return tui.RunDashboard(ctx, *u, app.tasks, app.journal, cmd.OutOrStdout())
		},
	}
}

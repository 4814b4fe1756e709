package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

const Version = "0.1.0"

var dbPathFlag string

var rootCmd = &cobra.Command{
	Use:           "lp",
	Short:         "LifePilot — local-first personal productivity dashboard",
	Long:          "LifePilot is a local-first CLI/TUI for managing tasks, keeping a journal and planning your day.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Database file (default from config, else ~/.lifepilot.db)")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newSignupCmd(),
		newWhoamiCmd(),
		newForgotPasswordCmd(),
		newResetPasswordCmd(),
		newTaskCmd(),
		newJournalCmd(),
		newDashboardCmd(),
		newDBCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

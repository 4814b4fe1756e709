package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

func newDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db",
		Short: "Show database info",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			path, err := resolveDBPath()
			if err != nil {
				return err
			}
			kv, err := storage.Open(ctx, path)
			if err != nil {
				return err
			}
			defer kv.Close()

			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Path", path))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Corrupt entries reset this session", kv.ResetCount()))
			return nil
		},
	}
}

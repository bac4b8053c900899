package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vfg2006/weathertrigger-console/internal/app"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
)

var metaForce bool

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Inspect the Meta integration",
}

var metaStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the connected Meta account and its ad accounts",
	RunE:  runMetaStatus,
}

func init() {
	metaStatusCmd.Flags().BoolVar(&metaForce, "force", false, "Skip the cached status")

	metaCmd.AddCommand(metaStatusCmd)
}

func runMetaStatus(cmd *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app.App) error {
		if err := requireSession(ctx, a); err != nil {
			return err
		}

		if err := a.Meta.LoadAccountData(ctx, linking.LoadOptions{Force: metaForce}); err != nil {
			return err
		}

		renderMetaState(cmd.OutOrStdout(), a.Meta.State())
		return nil
	})
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinch/internal/app"
)

func (c *CLI) newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [manifests...]",
		Short: "Record the current declaration sets as the drift baseline",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Snapshot(cmd.Context(), app.SnapshotOptions{
				Manifests: args,
			})
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinch/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [manifests...]",
		Short: "Remove recorded snapshot baselines",
		Long: "Clean removes the drift baselines recorded by pinch snapshot.\n" +
			"Named manifests lose only their own baseline; without arguments\n" +
			"the whole .pinch directory is removed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Manifests: args,
			})
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinch/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [manifests...]",
		Short: "List declarations ordered by canonical package name",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.List(cmd.Context(), app.ListOptions{
				Manifests: args,
				JSON:      asJSON,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Emit the listing as JSON")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinch/internal/app"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [manifests...]",
		Short: "Render manifests in canonical form",
		Long: "Fmt sorts declarations by canonical package name, keeping each\n" +
			"comment block attached to the declaration below it. The result is\n" +
			"printed to stdout unless --write rewrites the files in place.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			return c.app.Fmt(cmd.Context(), app.FmtOptions{
				Manifests: args,
				Write:     write,
			})
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Rewrite files in place instead of printing")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinch/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [manifests...]",
		Short: "Check manifests against the grammar and the project policy",
		Long: "Check parses each manifest and reports findings: grammar defects,\n" +
			"duplicate declarations, policy violations and drift from the last\n" +
			"snapshot. Without arguments the configured patterns are checked.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			noDrift, _ := cmd.Flags().GetBool("no-drift")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				Manifests:  args,
				Watch:      watch,
				OutputMode: outputMode,
				NoDrift:    noDrift,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-check whenever a watched manifest changes")
	cmd.Flags().Bool("no-drift", false, "Skip the snapshot drift rule")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}

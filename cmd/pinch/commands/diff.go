package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare two manifests as declaration sets",
		Long: "Diff compares the declaration sets of two manifests, ignoring line\n" +
			"order, comments and blank lines. The exit code is 1 when the sets\n" +
			"differ, so it can gate CI steps.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Diff(cmd.Context(), args[0], args[1])
		},
	}
}

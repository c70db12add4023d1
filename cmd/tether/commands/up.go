package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Build the library, link consumers, and watch until interrupted",
		Long: "Builds the library once, rewrites sibling projects that depend on it " +
			"to use the local build output, then runs the watch build until " +
			"interrupted. On shutdown every project is restored to its original state.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Up(cmd.Context())
		},
	}
}

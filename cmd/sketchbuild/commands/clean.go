package commands

import (
	"github.com/spf13/cobra"
	"github.com/whylabs/sketchbuild/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the scratch build trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			artifacts, _ := cmd.Flags().GetBool("artifacts")
			return c.components.App.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath,
				Artifacts:  artifacts,
			})
		},
	}
	cmd.Flags().Bool("artifacts", false, "Also remove built extension modules")
	return cmd
}

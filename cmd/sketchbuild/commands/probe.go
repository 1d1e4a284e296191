package commands

import (
	"github.com/spf13/cobra"
	"github.com/whylabs/sketchbuild/internal/app"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the cmake toolchain is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.components.App.Probe(cmd.Context(), app.ProbeOptions{
				ConfigPath: configPath,
			})
		},
	}
}

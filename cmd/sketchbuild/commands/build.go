package commands

import (
	"github.com/spf13/cobra"
	"github.com/whylabs/sketchbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Configure and compile the declared extensions",
		Long: "Configure and compile the native extensions declared in the manifest.\n" +
			"Without arguments every extension is built, in declaration order.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			debug, _ := cmd.Flags().GetBool("debug")
			installRoot, _ := cmd.Flags().GetString("install-root")
			python, _ := cmd.Flags().GetString("python")

			return c.components.App.Build(cmd.Context(), app.BuildOptions{
				ConfigPath:  configPath,
				Targets:     args,
				Debug:       debug,
				InstallRoot: installRoot,
				Interpreter: python,
			})
		},
	}
	cmd.Flags().Bool("debug", false, "Build the Debug configuration instead of Release")
	cmd.Flags().String("install-root", "", "Directory the built artifacts are placed under")
	cmd.Flags().String("python", "", "Python executable the extensions are built against")
	return cmd
}

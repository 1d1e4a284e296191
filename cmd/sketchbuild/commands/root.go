// Package commands implements the CLI commands for the sketchbuild tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/whylabs/sketchbuild/internal/app"
	"github.com/whylabs/sketchbuild/internal/build"
)

// jsonSwitcher is implemented by loggers that can switch to machine-readable
// output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for sketchbuild.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sketchbuild",
		Short:         "Build the whylogs-sketching native extension",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "sketchbuild.yaml", "Path to the build manifest")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		if sw, ok := c.Logger.(jsonSwitcher); ok {
			sw.SetJSON(jsonMode)
		}
	}

	rootCmd.AddCommand(cli.newBuildCmd())
	rootCmd.AddCommand(cli.newProbeCmd())
	rootCmd.AddCommand(cli.newCleanCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

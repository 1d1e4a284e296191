// Package main is the entry point for the sketchbuild extension-build tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/whylabs/sketchbuild/cmd/sketchbuild/commands"
	"github.com/whylabs/sketchbuild/internal/app"
	_ "github.com/whylabs/sketchbuild/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C and SIGTERM cancel the context, which kills a running cmake
	// child through CommandContext.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	cli := commands.New(components)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

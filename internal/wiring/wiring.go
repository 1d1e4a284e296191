// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/whylabs/sketchbuild/internal/adapters/cmake"
	_ "github.com/whylabs/sketchbuild/internal/adapters/config"
	_ "github.com/whylabs/sketchbuild/internal/adapters/fs"
	_ "github.com/whylabs/sketchbuild/internal/adapters/logger"
	_ "github.com/whylabs/sketchbuild/internal/adapters/python"
	_ "github.com/whylabs/sketchbuild/internal/adapters/shell"
	_ "github.com/whylabs/sketchbuild/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "github.com/whylabs/sketchbuild/internal/app"
)

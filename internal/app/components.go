package app

import "github.com/whylabs/sketchbuild/internal/core/ports"

// Components contains the initialized application components. It provides
// controlled access to the pieces the CLI layer touches directly: the app
// itself, the logger whose output mode the CLI switches, and the telemetry
// recorder the CLI closes on exit.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

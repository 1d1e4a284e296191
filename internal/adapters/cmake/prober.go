package cmake

import (
	"context"
	"io"
	"strings"

	"github.com/whylabs/sketchbuild/internal/core/domain"
	"github.com/whylabs/sketchbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Prober implements ports.Toolchain by invoking cmake itself.
type Prober struct {
	runner ports.Runner
}

// NewProber creates a toolchain prober backed by the given runner.
func NewProber(runner ports.Runner) *Prober {
	return &Prober{runner: runner}
}

// Probe runs `cmake --version` and discards its output; only the ability to
// execute the tool matters. A failed probe names every pending extension so
// the user sees the full scope of what cannot be built.
func (p *Prober) Probe(ctx context.Context, pending []string) error {
	cmd := ports.Command{
		Argv:   []string{"cmake", "--version"},
		Stdout: io.Discard,
		Stderr: io.Discard,
	}
	if err := p.runner.Run(ctx, cmd); err != nil {
		probeErr := zerr.With(domain.ErrToolchainMissing, "extensions", strings.Join(pending, ", "))
		return zerr.With(probeErr, "cause", err.Error())
	}
	return nil
}

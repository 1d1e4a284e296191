// Package progrock records build activity as vertexes on a progrock tape.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/whylabs/sketchbuild/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder emitting to the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex and attaches it to the returned context.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := &ports.VertexConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var vopts []progrock.VertexOpt
	if cfg.Internal {
		vopts = append(vopts, progrock.Internal())
	}

	v := r.rec.Vertex(digest.FromString(name), name, vopts...)
	vertex := &Vertex{vertex: v}

	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

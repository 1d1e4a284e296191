package ports

import (
	"context"
	"io"

	"github.com/whylabs/sketchbuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the lifecycle of the units of work a build performs.
type Telemetry interface {
	// Record starts a new vertex for a unit of work and attaches it to the
	// returned context.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the unit's standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the unit's error output stream.
	Stderr() io.Writer
	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as skipped work.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Internal marks tool bookkeeping that is not user-requested work.
	Internal bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInternal marks the vertex as internal bookkeeping.
func WithInternal() VertexOption {
	return func(c *VertexConfig) {
		c.Internal = true
	}
}

type vertexCtxKey struct{}

// ContextWithVertex attaches a vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexCtxKey{}).(Vertex)
	return v, ok
}

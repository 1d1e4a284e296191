package ports

import (
	"context"

	"github.com/whylabs/sketchbuild/internal/core/domain"
)

// ExtensionBuilder drives the two cmake phases for one extension.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ExtensionBuilder interface {
	// Build configures and compiles the extension described by req. The
	// phases never overlap, and a configure failure means the build phase
	// is not attempted.
	Build(ctx context.Context, req *domain.BuildRequest) error
}

package ports

import "github.com/whylabs/sketchbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the build manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the manifest at path. Extension source
	// directories are absolutized against the manifest's directory.
	Load(path string) (*domain.Manifest, error)
}

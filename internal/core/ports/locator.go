package ports

// ArtifactLocator finds the shared module a finished build produced.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ArtifactLocator interface {
	// Locate returns the artifact path under dir for the given module stem.
	// extSuffix, when non-empty, names the exact expected filename; otherwise
	// the known native library suffixes are tried. Multi-config generators
	// may nest the artifact one configuration directory deep.
	Locate(dir, stem, extSuffix string) (string, error)
}

// Package config provides the manifest loader for sketchbuild.
package config

import (
	"os"
	"path/filepath"

	"github.com/whylabs/sketchbuild/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the manifest omits the corresponding build settings.
const (
	DefaultCXXStandard = 17
	DefaultScratchDir  = "build_temp"
	DefaultInstallRoot = "."
)

// FileLoader implements ports.ConfigLoader using a YAML manifest file.
type FileLoader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the manifest from the given path.
func (l *FileLoader) Load(path string) (*domain.Manifest, error) {
	return Load(path)
}

// Load reads a manifest file from the given path and returns a validated
// domain.Manifest. Relative paths in the manifest are resolved against the
// manifest's own directory, not the process working directory.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve manifest directory")
	}

	return dto.toDomain(baseDir)
}

func (m *manifestDTO) toDomain(baseDir string) (*domain.Manifest, error) {
	if m.Package.Name == "" {
		return nil, zerr.New("package name is required")
	}
	if m.Package.Version == "" {
		return nil, zerr.With(zerr.New("package version is required"), "package", m.Package.Name)
	}
	if len(m.Extensions) == 0 {
		return nil, domain.ErrNoExtensions
	}

	seen := make(map[string]bool, len(m.Extensions))
	targets := make([]domain.ExtensionTarget, 0, len(m.Extensions))
	for _, ext := range m.Extensions {
		if ext.Name == "" {
			return nil, zerr.New("extension name is required")
		}
		if seen[ext.Name] {
			return nil, zerr.With(zerr.New("duplicate extension name"), "name", ext.Name)
		}
		seen[ext.Name] = true

		if ext.Source == "" {
			return nil, zerr.With(zerr.New("extension source is required"), "name", ext.Name)
		}

		targets = append(targets, domain.ExtensionTarget{
			Name:      ext.Name,
			SourceDir: resolve(baseDir, ext.Source),
		})
	}

	build := domain.BuildDefaults{
		CXXStandard: m.Build.CXXStandard,
		ScratchDir:  m.Build.ScratchDir,
		InstallRoot: m.Build.InstallRoot,
	}
	if build.CXXStandard == 0 {
		build.CXXStandard = DefaultCXXStandard
	}
	if build.ScratchDir == "" {
		build.ScratchDir = DefaultScratchDir
	}
	if build.InstallRoot == "" {
		build.InstallRoot = DefaultInstallRoot
	}
	build.ScratchDir = resolve(baseDir, build.ScratchDir)
	build.InstallRoot = resolve(baseDir, build.InstallRoot)

	return &domain.Manifest{
		Package: domain.PackageInfo{
			Name:        m.Package.Name,
			Version:     m.Package.Version,
			Description: m.Package.Description,
			License:     m.Package.License,
		},
		Interpreter: m.Interpreter.Python,
		Build:       build,
		Extensions:  targets,
	}, nil
}

// resolve joins rel onto baseDir unless it is already absolute.
func resolve(baseDir, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(baseDir, rel)
}

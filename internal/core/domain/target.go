package domain

import (
	"path/filepath"
	"strings"
)

// ExtensionTarget describes one native extension declared in the manifest.
// Name may be dotted ("whylogs.sketching") to place the artifact inside a
// package directory. SourceDir is the absolute path of the CMake source tree.
type ExtensionTarget struct {
	Name      string
	SourceDir string
}

// Stem returns the last element of the dotted name. This is the basename the
// built module is expected to carry, before the interpreter-specific suffix.
func (t ExtensionTarget) Stem() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// PackageDir returns the directory part of the dotted name as a relative
// filesystem path: "whylogs.sketching" maps to "whylogs", an undotted name
// maps to ".".
func (t ExtensionTarget) PackageDir() string {
	i := strings.LastIndex(t.Name, ".")
	if i < 0 {
		return "."
	}
	return filepath.Join(strings.Split(t.Name[:i], ".")...)
}

// OutputDir resolves the absolute directory that receives the built artifact
// for this target under the given install root.
func (t ExtensionTarget) OutputDir(installRoot string) (string, error) {
	return filepath.Abs(filepath.Join(installRoot, t.PackageDir()))
}

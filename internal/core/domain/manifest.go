package domain

import "go.trai.ch/zerr"

// PackageInfo is the static metadata block of the manifest. The build itself
// only consumes Version; the remaining fields are carried for the packaging
// layer that invokes the tool.
type PackageInfo struct {
	Name        string
	Version     string
	Description string
	License     string
}

// BuildDefaults holds the manifest-level knobs shared by every extension
// build.
type BuildDefaults struct {
	// CXXStandard is the C++ language standard requested from cmake.
	CXXStandard int
	// ScratchDir is the root under which per-build cmake trees are created.
	ScratchDir string
	// InstallRoot is the directory artifacts are placed under, combined with
	// each target's package directory.
	InstallRoot string
}

// Manifest is the loaded and validated build manifest.
type Manifest struct {
	Package     PackageInfo
	Interpreter string // optional explicit python executable
	Build       BuildDefaults
	Extensions  []ExtensionTarget
}

// TargetNames lists the declared extension names in declaration order.
func (m *Manifest) TargetNames() []string {
	names := make([]string, len(m.Extensions))
	for i, ext := range m.Extensions {
		names[i] = ext.Name
	}
	return names
}

// SelectTargets resolves requested names against the declared extensions,
// preserving declaration order. An empty request selects every extension.
func (m *Manifest) SelectTargets(names []string) ([]ExtensionTarget, error) {
	if len(names) == 0 {
		return m.Extensions, nil
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	selected := make([]ExtensionTarget, 0, len(names))
	for _, ext := range m.Extensions {
		if requested[ext.Name] {
			selected = append(selected, ext)
			delete(requested, ext.Name)
		}
	}

	for name := range requested {
		return nil, zerr.With(ErrTargetNotFound, "target", name)
	}

	return selected, nil
}

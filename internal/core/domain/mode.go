package domain

// BuildMode selects the cmake configuration used by both phases.
type BuildMode string

const (
	// ModeDebug builds with debug information and no optimization.
	ModeDebug BuildMode = "Debug"
	// ModeRelease builds optimized artifacts. This is the default.
	ModeRelease BuildMode = "Release"
)

// ModeFor maps the debug switch to a configuration name.
func ModeFor(debug bool) BuildMode {
	if debug {
		return ModeDebug
	}
	return ModeRelease
}

// Config returns the value handed to --config and CMAKE_BUILD_TYPE.
// The zero value behaves like ModeRelease.
func (m BuildMode) Config() string {
	if m == "" {
		return string(ModeRelease)
	}
	return string(m)
}

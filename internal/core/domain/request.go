package domain

// Interpreter identifies the Python installation an extension links against.
// Executable is carried byte for byte into the cmake cache entries so the
// interpreter that triggered the build is the one the module is compiled for.
type Interpreter struct {
	Executable string
	// IncludeDir is the C API header directory of the installation.
	IncludeDir string
	// Version is the "major.minor" interpreter version, e.g. "3.11".
	Version string
	// ExtSuffix is the sysconfig EXT_SUFFIX value for the installation,
	// e.g. ".cpython-311-x86_64-linux-gnu.so". Empty when unknown.
	ExtSuffix string
}

// BuildRequest carries everything one extension build needs. It is derived
// per target immediately before the configure phase and discarded after the
// build phase; nothing in it is persisted.
type BuildRequest struct {
	Target   ExtensionTarget
	Platform Platform
	Mode     BuildMode

	// OutputDir is the absolute directory that receives the artifact.
	OutputDir string
	// ScratchDir is the absolute cmake build tree, the working directory of
	// both phases.
	ScratchDir string

	Interpreter Interpreter

	// Version is the package version baked into the VERSION_INFO define.
	Version string
	// CXXStandard is the C++ language standard requested from cmake.
	CXXStandard int
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainMissing is returned when cmake cannot be invoked or fails to report a version.
	ErrToolchainMissing = zerr.New("cmake >= 3.12 must be installed")

	// ErrConfigureFailed is returned when the cmake configure phase exits non-zero.
	ErrConfigureFailed = zerr.New("cmake configure failed")

	// ErrBuildFailed is returned when the cmake build phase exits non-zero or produces no artifact.
	ErrBuildFailed = zerr.New("cmake build failed")

	// ErrInterpreterNotFound is returned when no Python interpreter can be located.
	ErrInterpreterNotFound = zerr.New("python interpreter not found")

	// ErrNoExtensions is returned when the manifest declares no extension targets.
	ErrNoExtensions = zerr.New("no extensions declared")

	// ErrTargetNotFound is returned when a requested extension name is not in the manifest.
	ErrTargetNotFound = zerr.New("extension target not found")
)

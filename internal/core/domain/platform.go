package domain

import (
	"math/bits"
	"runtime"
)

// Platform identifies the host an extension is compiled on. It is plain data
// so that argument derivation stays a pure function of its inputs.
type Platform struct {
	// OS is the GOOS identifier of the host.
	OS string
	// WordSize is the pointer width of the host process, 32 or 64.
	WordSize int
}

// HostPlatform captures the platform of the current process.
func HostPlatform() Platform {
	return Platform{
		OS:       runtime.GOOS,
		WordSize: bits.UintSize,
	}
}

// IsWindows reports whether the platform follows the MSVC generator
// conventions: per-configuration output directories, host toolset selector
// and msbuild-style parallelism.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

package cmake_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/whylabs/sketchbuild/internal/adapters/cmake"
	"github.com/whylabs/sketchbuild/internal/core/domain"
)

func request(os string, wordSize int, mode domain.BuildMode) *domain.BuildRequest {
	return &domain.BuildRequest{
		Target: domain.ExtensionTarget{
			Name:      "whylogs-sketching",
			SourceDir: "/src/native",
		},
		Platform:   domain.Platform{OS: os, WordSize: wordSize},
		Mode:       mode,
		OutputDir:  "/out/lib",
		ScratchDir: "/tmp/scratch",
		Interpreter: domain.Interpreter{
			Executable: "/usr/bin/python3",
			IncludeDir: "/usr/include/python3.11",
		},
		Version:     "3.4.1.dev1",
		CXXStandard: 17,
	}
}

func TestConfigureArgs_Golden(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.BuildRequest
	}{
		{"configure_linux_release", request("linux", 64, domain.ModeRelease)},
		{"configure_darwin_debug", request("darwin", 64, domain.ModeDebug)},
		{"configure_windows64_debug", request("windows", 64, domain.ModeDebug)},
		{"configure_windows32_release", request("windows", 32, domain.ModeRelease)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := cmake.ConfigureArgs(tt.req)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(strings.Join(args, "\n")+"\n"))
		})
	}
}

func TestBuildArgs_Golden(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.BuildRequest
	}{
		{"build_linux_release", request("linux", 64, domain.ModeRelease)},
		{"build_windows64_release", request("windows", 64, domain.ModeRelease)},
		{"build_windows32_release", request("windows", 32, domain.ModeRelease)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := cmake.BuildArgs(tt.req)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(strings.Join(args, "\n")+"\n"))
		})
	}
}

func TestConfigureArgs_InterpreterIdentity(t *testing.T) {
	req := request("linux", 64, domain.ModeRelease)
	req.Interpreter.Executable = "/opt/my python/bin/python3.11"

	args := cmake.ConfigureArgs(req)

	assert.Contains(t, args, "-DPython3_EXECUTABLE=/opt/my python/bin/python3.11")
	assert.Contains(t, args, "-DPython_EXECUTABLE=/opt/my python/bin/python3.11")
}

func TestConfigureArgs_CXXStandardOverride(t *testing.T) {
	req := request("linux", 64, domain.ModeRelease)
	req.CXXStandard = 20

	args := cmake.ConfigureArgs(req)

	assert.Contains(t, args, "-DCMAKE_CXX_STANDARD=20")
	assert.NotContains(t, args, "-DCMAKE_CXX_STANDARD=17")
}

func TestConfigureArgs_HostToolsetOn64BitWindowsOnly(t *testing.T) {
	args64 := cmake.ConfigureArgs(request("windows", 64, domain.ModeRelease))
	assert.Contains(t, args64, "-T")
	assert.Contains(t, args64, "host=x64")
	assert.Contains(t, args64, "-DCMAKE_GENERATOR_PLATFORM=x64")

	args32 := cmake.ConfigureArgs(request("windows", 32, domain.ModeRelease))
	assert.NotContains(t, args32, "-T")
	assert.NotContains(t, args32, "host=x64")
	assert.NotContains(t, args32, "-DCMAKE_GENERATOR_PLATFORM=x64")
}

func TestConfigureArgs_PerConfigOutputDirOnWindows(t *testing.T) {
	debug := cmake.ConfigureArgs(request("windows", 64, domain.ModeDebug))
	assert.Contains(t, debug, "-DCMAKE_LIBRARY_OUTPUT_DIRECTORY_DEBUG=/out/lib")
	assert.NotContains(t, debug, "-DCMAKE_BUILD_TYPE=Debug")

	release := cmake.ConfigureArgs(request("windows", 64, domain.ModeRelease))
	assert.Contains(t, release, "-DCMAKE_LIBRARY_OUTPUT_DIRECTORY_RELEASE=/out/lib")
}

func TestConfigureArgs_ZeroModeDefaultsToRelease(t *testing.T) {
	req := request("linux", 64, "")

	args := cmake.ConfigureArgs(req)

	assert.Contains(t, args, "-DCMAKE_BUILD_TYPE=Release")
}

func TestBuildArgs_ParallelismTokens(t *testing.T) {
	linux := cmake.BuildArgs(request("linux", 64, domain.ModeRelease))
	assert.Equal(t, []string{"--", "-j2"}, linux[len(linux)-2:])

	win64 := cmake.BuildArgs(request("windows", 64, domain.ModeRelease))
	assert.Equal(t, []string{"--", "/m"}, win64[len(win64)-2:])

	win32 := cmake.BuildArgs(request("windows", 32, domain.ModeRelease))
	assert.Equal(t, "Release", win32[len(win32)-1])
	assert.NotContains(t, win32, "--")
}

package cmake

import (
	"strconv"
	"strings"

	"github.com/whylabs/sketchbuild/internal/core/domain"
)

// ConfigureArgs derives the complete configure argv for one extension build,
// program name included. The derivation is a pure function of the request;
// platform branches read req.Platform, never the runtime.
func ConfigureArgs(req *domain.BuildRequest) []string {
	args := []string{
		"cmake",
		req.Target.SourceDir,
		"-DCMAKE_LIBRARY_OUTPUT_DIRECTORY=" + req.OutputDir,
		"-DWITH_PYTHON=True",
		"-DCMAKE_CXX_STANDARD=" + strconv.Itoa(req.CXXStandard),
		"-DPython3_EXECUTABLE=" + req.Interpreter.Executable,
		"-DPython_EXECUTABLE=" + req.Interpreter.Executable,
		"-DPython3_INCLUDE_DIRS=" + req.Interpreter.IncludeDir,
		"-DPython_INCLUDE_DIRS=" + req.Interpreter.IncludeDir,
	}

	cfg := req.Mode.Config()
	if req.Platform.IsWindows() {
		args = append(args, "-DCMAKE_LIBRARY_OUTPUT_DIRECTORY_"+strings.ToUpper(cfg)+"="+req.OutputDir)
		if req.Platform.WordSize == 64 {
			args = append(args, "-T", "host=x64", "-DCMAKE_GENERATOR_PLATFORM=x64")
		}
	} else {
		args = append(args, "-DCMAKE_BUILD_TYPE="+cfg)
	}

	return args
}

// BuildArgs derives the complete build argv. The compile target is the fixed
// cmake target "python". Parallelism tokens follow the platform's native
// build tool: msbuild's /m on 64-bit Windows, make's -j2 elsewhere. 32-bit
// Windows builds get no parallelism token at all.
func BuildArgs(req *domain.BuildRequest) []string {
	args := []string{"cmake", "--build", ".", "--target", "python", "--config", req.Mode.Config()}

	if req.Platform.IsWindows() {
		if req.Platform.WordSize == 64 {
			args = append(args, "--", "/m")
		}
	} else {
		args = append(args, "--", "-j2")
	}

	return args
}

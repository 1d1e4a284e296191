package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// moduleSuffixes are the native library suffixes tried when the interpreter
// did not report an exact EXT_SUFFIX.
var moduleSuffixes = []string{".so", ".pyd", ".dylib"}

// configSubdirs are the per-configuration directories multi-config cmake
// generators nest their output under.
var configSubdirs = []string{"Release", "Debug"}

// Locator implements ports.ArtifactLocator using filepath.Glob.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the built module under dir for the given stem. The exact
// name <stem><extSuffix> wins when present; otherwise any native library
// matching the stem is accepted, searched in dir itself and then in the
// per-configuration subdirectories.
func (l *Locator) Locate(dir, stem, extSuffix string) (string, error) {
	searchDirs := make([]string, 0, 1+len(configSubdirs))
	searchDirs = append(searchDirs, dir)
	for _, sub := range configSubdirs {
		searchDirs = append(searchDirs, filepath.Join(dir, sub))
	}

	for _, searchDir := range searchDirs {
		if extSuffix != "" {
			exact := filepath.Join(searchDir, stem+extSuffix)
			if isFile(exact) {
				return exact, nil
			}
		}

		for _, suffix := range moduleSuffixes {
			matches, err := filepath.Glob(filepath.Join(searchDir, stem+"*"+suffix))
			if err != nil {
				return "", zerr.With(zerr.Wrap(err, "failed to glob artifact"), "dir", searchDir)
			}

			sort.Strings(matches)
			for _, match := range matches {
				if isFile(match) {
					return match, nil
				}
			}
		}
	}

	return "", zerr.With(zerr.With(zerr.New("artifact not found"), "dir", dir), "stem", stem)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

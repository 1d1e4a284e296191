// Package fs implements the filesystem-facing adapters: workspace directory
// management and artifact discovery.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// EnsureDir creates the directory and any missing parents.
func (w *Workspace) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// RemoveDir deletes the directory tree rooted at path.
func (w *Workspace) RemoveDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
	}
	return nil
}

// RemoveFile deletes a single file, tolerating one that is already gone.
func (w *Workspace) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

package ports

// Workspace manages the on-disk directories a build writes into.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// EnsureDir creates the directory and any missing parents.
	EnsureDir(path string) error
	// RemoveDir deletes the directory and everything beneath it. A missing
	// directory is not an error.
	RemoveDir(path string) error
	// RemoveFile deletes a single file. A missing file is not an error.
	RemoveFile(path string) error
}

package ports

import (
	"context"

	"github.com/whylabs/sketchbuild/internal/core/domain"
)

// InterpreterResolver locates the Python installation extensions are built
// against.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type InterpreterResolver interface {
	// Resolve picks the interpreter. explicit, when non-empty, is used
	// exactly as given; otherwise python3 and python are searched on PATH.
	// The returned Executable is byte-identical to the selected path.
	Resolve(ctx context.Context, explicit string) (domain.Interpreter, error)
}

package ports

import "context"

// Toolchain verifies that the external build toolchain is usable.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Probe checks that cmake can be invoked. pending names every extension
	// that is about to be built; a failed probe reports all of them. Probe
	// runs once per build session, before any configure work.
	Probe(ctx context.Context, pending []string) error
}

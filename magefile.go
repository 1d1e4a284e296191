//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs the tests.
var Default = Test

// Build compiles the sketchbuild binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "sketchbuild", "./cmd/sketchbuild")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet across the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Generate regenerates the gomock doubles under internal/core/ports/mocks.
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// CI runs the checks the pipeline runs.
func CI() {
	mg.SerialDeps(Lint, Test)
}

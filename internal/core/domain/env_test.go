package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whylabs/sketchbuild/internal/core/domain"
)

func TestBuildEnv_PreservesExistingFlags(t *testing.T) {
	base := []string{
		"PATH=/usr/bin",
		"CXXFLAGS=-O2 -Wall",
		"HOME=/home/test",
	}

	env := domain.BuildEnv(base, "3.4.1.dev1")

	cxxflags := findEnv(t, env, "CXXFLAGS")
	assert.True(t, strings.HasPrefix(cxxflags, "-O2 -Wall"),
		"previous flags must survive as a prefix, got %q", cxxflags)
	assert.Contains(t, cxxflags, `-DVERSION_INFO=\"3.4.1.dev1\"`)
}

func TestBuildEnv_EmptyBase(t *testing.T) {
	env := domain.BuildEnv([]string{"PATH=/usr/bin"}, "1.0.0")

	cxxflags := findEnv(t, env, "CXXFLAGS")
	assert.Equal(t, ` -DVERSION_INFO=\"1.0.0\"`, cxxflags)
}

func TestBuildEnv_DoesNotMutateBase(t *testing.T) {
	base := []string{"CXXFLAGS=-g", "PATH=/usr/bin"}
	snapshot := make([]string, len(base))
	copy(snapshot, base)

	_ = domain.BuildEnv(base, "1.0.0")

	assert.Equal(t, snapshot, base)
}

func TestBuildEnv_OtherVariablesUntouched(t *testing.T) {
	base := []string{"PATH=/usr/bin", "CC=clang"}

	env := domain.BuildEnv(base, "1.0.0")

	assert.Contains(t, env, "PATH=/usr/bin")
	assert.Contains(t, env, "CC=clang")
}

func findEnv(t *testing.T, env []string, key string) string {
	t.Helper()
	for _, entry := range env {
		if v, ok := strings.CutPrefix(entry, key+"="); ok {
			return v
		}
	}
	require.Failf(t, "variable missing", "%s not found in %v", key, env)
	return ""
}

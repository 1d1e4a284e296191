package cmake_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whylabs/sketchbuild/internal/adapters/cmake"
	"github.com/whylabs/sketchbuild/internal/core/domain"
	"github.com/whylabs/sketchbuild/internal/core/ports"
	"github.com/whylabs/sketchbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type builderMocks struct {
	runner    *mocks.MockRunner
	workspace *mocks.MockWorkspace
	locator   *mocks.MockArtifactLocator
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
}

// newBuilder wires a Builder against fresh mocks. The vertex stream getters
// are stubbed for every test; everything else is expected per test.
func newBuilder(t *testing.T) (*cmake.Builder, *builderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &builderMocks{
		runner:    mocks.NewMockRunner(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		locator:   mocks.NewMockArtifactLocator(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
	}
	m.vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	m.vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()

	b := cmake.NewBuilder(m.runner, m.workspace, m.locator, m.logger, m.telemetry)
	return b, m
}

func (m *builderMocks) expectPhase(name string) {
	m.telemetry.EXPECT().Record(gomock.Any(), name).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, m.vertex
		})
}

func TestBuilder_Build_RunsBothPhasesInOrder(t *testing.T) {
	b, m := newBuilder(t)
	req := request("linux", 64, domain.ModeRelease)

	m.workspace.EXPECT().EnsureDir(req.ScratchDir).Return(nil)
	m.workspace.EXPECT().EnsureDir(req.OutputDir).Return(nil)
	m.expectPhase("configure whylogs-sketching")
	m.expectPhase("build whylogs-sketching")
	m.vertex.EXPECT().Complete(nil).Times(2)

	var calls []ports.Command
	m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.Command) error {
			calls = append(calls, cmd)
			return nil
		}).Times(2)

	m.locator.EXPECT().Locate(req.OutputDir, "whylogs-sketching", "").
		Return("/out/lib/whylogs-sketching.so", nil)
	m.logger.EXPECT().Info("built /out/lib/whylogs-sketching.so")

	err := b.Build(t.Context(), req)
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, cmake.ConfigureArgs(req), calls[0].Argv)
	assert.Equal(t, cmake.BuildArgs(req), calls[1].Argv)
	assert.Equal(t, req.ScratchDir, calls[0].Dir)
	assert.Equal(t, req.ScratchDir, calls[1].Dir)
}

func TestBuilder_Build_EnvCarriesVersionInfo(t *testing.T) {
	t.Setenv("CXXFLAGS", "-O2 -Wall")

	b, m := newBuilder(t)
	req := request("linux", 64, domain.ModeRelease)

	m.workspace.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
	m.expectPhase("configure whylogs-sketching")
	m.expectPhase("build whylogs-sketching")
	m.vertex.EXPECT().Complete(nil).Times(2)

	var envs [][]string
	m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.Command) error {
			envs = append(envs, cmd.Env)
			return nil
		}).Times(2)

	m.locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Return("/out/lib/a.so", nil)
	m.logger.EXPECT().Info(gomock.Any())

	err := b.Build(t.Context(), req)
	require.NoError(t, err)

	require.Len(t, envs, 2)
	for _, env := range envs {
		var flags string
		for _, entry := range env {
			if after, ok := strings.CutPrefix(entry, "CXXFLAGS="); ok {
				flags = after
				break
			}
		}
		assert.True(t, strings.HasPrefix(flags, "-O2 -Wall"), "previous flags must survive as prefix: %q", flags)
		assert.Contains(t, flags, `-DVERSION_INFO=\"3.4.1.dev1\"`)
	}
}

func TestBuilder_Build_ConfigureFailureSkipsBuild(t *testing.T) {
	b, m := newBuilder(t)
	req := request("linux", 64, domain.ModeRelease)

	m.workspace.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
	m.expectPhase("configure whylogs-sketching")
	m.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
	m.locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := b.Build(t.Context(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigureFailed))
	assert.False(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestBuilder_Build_BuildFailure(t *testing.T) {
	b, m := newBuilder(t)
	req := request("linux", 64, domain.ModeRelease)

	m.workspace.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
	m.expectPhase("configure whylogs-sketching")
	m.expectPhase("build whylogs-sketching")
	m.vertex.EXPECT().Complete(nil)
	m.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	gomock.InOrder(
		m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil),
		m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(assert.AnError),
	)
	m.locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := b.Build(t.Context(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestBuilder_Build_MissingArtifact(t *testing.T) {
	b, m := newBuilder(t)
	req := request("linux", 64, domain.ModeRelease)
	req.Interpreter.ExtSuffix = ".cpython-311-x86_64-linux-gnu.so"

	m.workspace.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
	m.expectPhase("configure whylogs-sketching")
	m.expectPhase("build whylogs-sketching")
	m.vertex.EXPECT().Complete(nil).Times(2)
	m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	m.locator.EXPECT().Locate(req.OutputDir, "whylogs-sketching", ".cpython-311-x86_64-linux-gnu.so").
		Return("", errors.New("artifact not found"))

	err := b.Build(t.Context(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestBuilder_Build_ScratchDirFailure(t *testing.T) {
	b, m := newBuilder(t)
	req := request("linux", 64, domain.ModeRelease)

	m.workspace.EXPECT().EnsureDir(req.ScratchDir).Return(assert.AnError)
	m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)

	err := b.Build(t.Context(), req)
	require.Error(t, err)
}

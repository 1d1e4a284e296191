package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whylabs/sketchbuild/cmd/sketchbuild/commands"
	"github.com/whylabs/sketchbuild/internal/app"
	"github.com/whylabs/sketchbuild/internal/core/domain"
	"github.com/whylabs/sketchbuild/internal/core/ports"
	"github.com/whylabs/sketchbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader      *mocks.MockConfigLoader
	toolchain   *mocks.MockToolchain
	interpreter *mocks.MockInterpreterResolver
	builder     *mocks.MockExtensionBuilder
	workspace   *mocks.MockWorkspace
	locator     *mocks.MockArtifactLocator
}

// newCLI wires a CLI against an app built on fresh mocks. Logging and
// telemetry are stubbed; the remaining collaborators are expected per test.
func newCLI(t *testing.T) (*commands.CLI, *cliMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &cliMocks{
		loader:      mocks.NewMockConfigLoader(ctrl),
		toolchain:   mocks.NewMockToolchain(ctrl),
		interpreter: mocks.NewMockInterpreterResolver(ctrl),
		builder:     mocks.NewMockExtensionBuilder(ctrl),
		workspace:   mocks.NewMockWorkspace(ctrl),
		locator:     mocks.NewMockArtifactLocator(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	a := app.New(m.loader, m.toolchain, m.interpreter, m.builder, m.workspace, m.locator, logger, telemetry)

	cli := commands.New(&app.Components{
		App:       a,
		Logger:    logger,
		Telemetry: telemetry,
	})

	return cli, m
}

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Package: domain.PackageInfo{Name: "whylogs-sketching", Version: "1.0.0"},
		Build: domain.BuildDefaults{
			CXXStandard: 17,
			ScratchDir:  "/work/build_temp",
			InstallRoot: "/work",
		},
		Extensions: []domain.ExtensionTarget{
			{Name: "mylib", SourceDir: "/work/native"},
		},
	}
}

func TestBuild_Success(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("sketchbuild.yaml").Return(testManifest(), nil)
	m.toolchain.EXPECT().Probe(gomock.Any(), []string{"mylib"}).Return(nil)
	m.interpreter.EXPECT().Resolve(gomock.Any(), "").Return(domain.Interpreter{Executable: "/usr/bin/python3"}, nil)
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil)

	cli.SetArgs([]string{"build"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestBuild_FlagsReachTheApp(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("custom.yaml").Return(testManifest(), nil)
	m.toolchain.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(nil)
	// The --python flag wins over the manifest's interpreter setting.
	m.interpreter.EXPECT().Resolve(gomock.Any(), "/opt/py/bin/python3").
		Return(domain.Interpreter{Executable: "/opt/py/bin/python3"}, nil)

	var req *domain.BuildRequest
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.BuildRequest) error {
			req = r
			return nil
		})

	cli.SetArgs([]string{"build", "mylib", "-c", "custom.yaml", "--debug", "--python", "/opt/py/bin/python3"})
	require.NoError(t, cli.Execute(context.Background()))

	require.NotNil(t, req)
	assert.Equal(t, domain.ModeDebug, req.Mode)
	assert.Equal(t, "/opt/py/bin/python3", req.Interpreter.Executable)
}

func TestBuild_ToolchainMissing(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("sketchbuild.yaml").Return(testManifest(), nil)
	m.toolchain.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(domain.ErrToolchainMissing)
	m.interpreter.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(domain.Interpreter{Executable: "/usr/bin/python3"}, nil).AnyTimes()
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Times(0)

	cli.SetArgs([]string{"build"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrToolchainMissing)
}

func TestProbe_Success(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("sketchbuild.yaml").Return(testManifest(), nil)
	m.toolchain.EXPECT().Probe(gomock.Any(), []string{"mylib"}).Return(nil)

	cli.SetArgs([]string{"probe"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestClean_Artifacts(t *testing.T) {
	cli, m := newCLI(t)

	m.loader.EXPECT().Load("sketchbuild.yaml").Return(testManifest(), nil)
	m.workspace.EXPECT().RemoveDir("/work/build_temp").Return(nil)
	m.locator.EXPECT().Locate("/work", "mylib", "").Return("/work/mylib.so", nil)
	m.workspace.EXPECT().RemoveFile("/work/mylib.so").Return(nil)

	cli.SetArgs([]string{"clean", "--artifacts"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUnknownCommand(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"frobnicate"})
	require.Error(t, cli.Execute(context.Background()))
}

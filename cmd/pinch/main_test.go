package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinch/internal/adapters/watcher"
	"go.trai.ch/pinch/internal/app"
	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	configLoader *mocks.MockConfigLoader
	logger       *mocks.MockLogger
	resolver     *mocks.MockManifestResolver
	loader       *mocks.MockManifestLoader
}

// newTestApp builds a real App over mocks, returning the mocks that tests
// set expectations on.
func newTestApp(ctrl *gomock.Controller) (*app.App, testMocks) {
	tm := testMocks{
		configLoader: mocks.NewMockConfigLoader(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
		resolver:     mocks.NewMockManifestResolver(ctrl),
		loader:       mocks.NewMockManifestLoader(ctrl),
	}

	application := app.New(
		tm.configLoader,
		tm.logger,
		tm.resolver,
		tm.loader,
		mocks.NewMockManifestWriter(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockSnapshotStore(ctrl),
		mocks.NewMockWatcher(ctrl),
		watcher.NewDigestCache(),
	)
	return application, tm
}

func chdirTemp(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change into temp directory: %v", err)
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	application, tm := newTestApp(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: tm.logger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when execution fails.
func TestRun_ExecutionError(t *testing.T) {
	chdirTemp(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	application, tm := newTestApp(ctrl)
	tm.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: tm.logger,
		}, func() {}, nil
	}

	// Mock Load failing to simulate execution failure
	tm.configLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"check"}, stderr, provider, func(a *app.App) {
		// Disable TUI for test
		a.WithTeaOptions(tea.WithInput(nil))
		a.WithStdout(io.Discard)
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_CheckFindingsExitSilently verifies that findings fail the process
// with exit code 1 without a second error report, since the renderer
// already showed them.
func TestRun_CheckFindingsExitSilently(t *testing.T) {
	chdirTemp(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Logger.Error expectation: logging here would fail the test.
	application, tm := newTestApp(ctrl)

	project := &domain.Project{
		Root:     ".",
		Patterns: []string{"requirements.txt"},
		Policy:   domain.Policy{Drift: domain.DriftOff},
	}
	findings := domain.Findings{{
		Rule:     domain.RuleSyntax,
		Severity: domain.SeverityError,
		Manifest: "requirements.txt",
		Line:     1,
		Message:  "declaration contains whitespace",
	}}

	tm.configLoader.EXPECT().Load(".").Return(project, nil)
	tm.resolver.EXPECT().Resolve([]string{"requirements.txt"}, ".").
		Return([]string{"requirements.txt"}, nil)
	tm.loader.EXPECT().Load("requirements.txt").
		Return(&domain.Manifest{Path: "requirements.txt"}, findings, nil)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: tm.logger,
		}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"check", "--ci"}, io.Discard, provider, func(a *app.App) {
		a.WithStdout(io.Discard)
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	chdirTemp(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// We need a provider that blocks until context is done.
	blockCh := make(chan struct{})

	application, tm := newTestApp(ctrl)
	tm.configLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Project, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	// Allow logging of the error when context is canceled
	tm.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"check"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: tm.logger}, func() {}, nil
		}, func(a *app.App) {
			a.WithStdout(io.Discard)
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}

// Package app implements the application layer for pinch.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pinch/internal/adapters/detector"
	"go.trai.ch/pinch/internal/adapters/linear"
	"go.trai.ch/pinch/internal/adapters/telemetry"
	"go.trai.ch/pinch/internal/adapters/tui"
	"go.trai.ch/pinch/internal/adapters/watcher"
	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports"
	"go.trai.ch/pinch/internal/engine/checker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	resolver     ports.ManifestResolver
	loader       ports.ManifestLoader
	writer       ports.ManifestWriter
	hasher       ports.Hasher
	store        ports.SnapshotStore
	watcher      ports.Watcher
	digests      *watcher.DigestCache
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	log ports.Logger,
	resolver ports.ManifestResolver,
	loader ports.ManifestLoader,
	writer ports.ManifestWriter,
	hasher ports.Hasher,
	store ports.SnapshotStore,
	fsWatcher ports.Watcher,
	digests *watcher.DigestCache,
) *App {
	return &App{
		configLoader: configLoader,
		logger:       log,
		resolver:     resolver,
		loader:       loader,
		writer:       writer,
		hasher:       hasher,
		store:        store,
		watcher:      fsWatcher,
		digests:      digests,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects command output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Manifests overrides the configured patterns when non-empty.
	Manifests  []string
	Watch      bool
	OutputMode string
	NoDrift    bool
}

// Run executes the check pipeline for the resolved manifest set, once or
// repeatedly in watch mode.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the project configuration
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Resolve the manifest set up front so bad arguments fail plainly,
	// before any renderer takes over the terminal.
	manifests, err := a.resolveManifests(project, opts.Manifests)
	if err != nil {
		return err
	}

	// 3. Initialize Renderer
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	interactive := mode == detector.ModeTUI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var renderer ports.Renderer
	if interactive {
		teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(tui.NewModel(), teaOpts...)
	} else {
		renderer = linear.NewRenderer(a.stdout, os.Stderr)
	}

	// 4. Initialize Telemetry
	// Create a bridge that sends OTel span lifecycle events to the renderer.
	bridge := telemetry.NewBridge(renderer)

	// Configure the global OTel SDK to use our bridge for spans.
	setupOTel(bridge)

	// Create the tracer adapter. The renderer is injected so span output
	// can be streamed through the batcher.
	tracer := telemetry.NewOTelTracer("pinch").WithRenderer(renderer)
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	// 5. Initialize Checker
	chk := checker.NewChecker(a.loader, a.hasher, a.store, tracer, a.logger)

	// 6. Run Renderer and Checker concurrently
	g, gctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		// Wait blocks until the renderer has terminated.
		waitErr := renderer.Wait()
		requested := gctx.Err() != nil
		if interactive {
			// Quitting the UI ends a watch session.
			cancel()
		}
		if waitErr != nil && requested {
			// The program dying with its context is normal shutdown.
			return nil
		}
		return waitErr
	})

	// Checker Routine
	g.Go(func() error {
		defer func() {
			// Handle panic recovery for the checker goroutine
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "Checker panic: %v\n", r)
			}
			// Ensure renderer stops when checking finishes. In watch mode
			// this only happens on shutdown.
			_ = renderer.Stop()
		}()

		if opts.Watch {
			return a.watchLoop(gctx, chk, project, opts)
		}

		_, err := chk.Run(gctx, project, manifests, checker.Options{NoDrift: opts.NoDrift})
		return err
	})

	return g.Wait()
}

// watchLoop re-checks the manifest set whenever one of its files changes.
// Check failures are rendered but never end the loop; only context
// cancellation does.
func (a *App) watchLoop(ctx context.Context, chk *checker.Checker, project *domain.Project, opts RunOptions) error {
	trigger := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		if !a.shouldRecheck(project, opts.Manifests, paths) {
			return
		}
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return zerr.Wrap(err, "failed to watch project root")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	go func() {
		for event := range a.watcher.Events() {
			deb.Add(event.Path)
		}
	}()

	// Record the starting digests so content already on disk does not
	// count as a change once events flow.
	if manifests, err := a.resolveManifests(project, opts.Manifests); err == nil {
		for _, path := range manifests {
			a.digests.Changed(path)
		}
	}

	a.runCheck(ctx, chk, project, opts)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.runCheck(ctx, chk, project, opts)
		}
	}
}

// runCheck resolves and checks the manifest set, reporting failures
// without ending the watch session.
func (a *App) runCheck(ctx context.Context, chk *checker.Checker, project *domain.Project, opts RunOptions) {
	manifests, err := a.resolveManifests(project, opts.Manifests)
	if err != nil {
		a.logger.Error(err)
		return
	}

	if _, err := chk.Run(ctx, project, manifests, checker.Options{NoDrift: opts.NoDrift}); err != nil &&
		!errors.Is(err, domain.ErrCheckFailed) {
		a.logger.Error(err)
	}
}

// shouldRecheck reports whether any changed path is a watched manifest
// whose content actually differs from the last run.
func (a *App) shouldRecheck(project *domain.Project, explicit []string, paths []string) bool {
	manifests, err := a.resolveManifests(project, explicit)
	if err != nil {
		// A named manifest disappearing is itself worth re-reporting.
		return true
	}

	watched := make(map[string]bool, len(manifests))
	for _, m := range manifests {
		watched[filepath.Clean(m)] = true
	}

	changed := false
	for _, path := range paths {
		if !watched[filepath.Clean(path)] {
			continue
		}
		if a.digests.Changed(path) {
			changed = true
		}
	}
	return changed
}

// resolveManifests expands explicit arguments, or the configured patterns
// when none were given, into the manifest set.
func (a *App) resolveManifests(project *domain.Project, explicit []string) ([]string, error) {
	patterns := project.Patterns
	if len(explicit) > 0 {
		patterns = explicit
	}
	return a.resolver.Resolve(patterns, project.Root)
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	// Register a provider that reports every span to the renderer.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}

package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic,
// allowing the same event stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare for shutdown.
	// It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnPlanEmit is called once the set of manifests to check is known.
	// manifests: manifest paths in check order
	OnPlanEmit(manifests []string)

	// OnCheckStart is called when a manifest check begins.
	// spanID: unique identifier for this check
	// name: the manifest path
	// startTime: when the check started
	OnCheckStart(spanID, name string, startTime time.Time)

	// OnCheckLog is called when a check emits output, one finding per line.
	// spanID: identifier for the check
	// data: raw log bytes (may contain partial lines)
	OnCheckLog(spanID string, data []byte)

	// OnCheckComplete is called when a manifest check finishes.
	// spanID: identifier for the check
	// endTime: when the check completed
	// err: nil if the manifest passed, error otherwise
	OnCheckComplete(spanID string, endTime time.Time, err error)
}

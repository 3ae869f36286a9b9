// Package tui renders check progress as an interactive Bubble Tea UI.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pinch/internal/adapters/telemetry"
)

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the manifest set to the TUI.
func (r *Renderer) OnPlanEmit(manifests []string) {
	r.program.Send(telemetry.MsgInitManifests{
		Manifests: manifests,
	})
}

// OnCheckStart forwards check start events to the TUI.
func (r *Renderer) OnCheckStart(spanID, name string, startTime time.Time) {
	r.program.Send(telemetry.MsgCheckStart{
		SpanID:    spanID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnCheckLog forwards finding output to the TUI.
func (r *Renderer) OnCheckLog(spanID string, data []byte) {
	r.program.Send(telemetry.MsgCheckLog{
		SpanID: spanID,
		Data:   data,
	})
}

// OnCheckComplete forwards check completion events to the TUI.
func (r *Renderer) OnCheckComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(telemetry.MsgCheckComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}

// Package linear provides a synchronous, line-buffered renderer for CI
// environments and piped output.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/pinch/internal/ui/output"
)

// Renderer implements ports.Renderer for non-interactive runs. Findings
// print chronologically with the manifest path as prefix; lifecycle
// messages go to stderr so stdout stays grep-friendly.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	checks  map[string]*checkState // spanID -> check state
	buffers map[string]*bytes.Buffer
}

type checkState struct {
	name      string
	startTime time.Time
	findings  int
}

// NewRenderer creates a new linear renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	out := output.NewWithProfile(stderr, output.ColorProfileANSI)

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  out,
		checks:  make(map[string]*checkState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op: the linear renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes any buffered partial lines.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op: there is no background goroutine to join.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit announces the manifest set before the first check starts.
func (r *Renderer) OnPlanEmit(manifests []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Checking %d manifest(s)\n", len(manifests))
}

// OnCheckStart prints the check start line.
func (r *Renderer) OnCheckStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks[spanID] = &checkState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s checking...\n", prefix)
}

// OnCheckLog buffers finding output and prints complete lines with the
// manifest prefix.
func (r *Renderer) OnCheckLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	check, ok := r.checks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Keep the partial line for the next write or the final flush.
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[spanID] = rest
			}
			break
		}
		r.printLineLocked(check, line)
	}
}

// OnCheckComplete flushes the remaining buffer and prints the verdict.
func (r *Renderer) OnCheckComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	check, ok := r.checks[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(check.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", check.name)

	switch {
	case err != nil:
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n",
			prefix, symbol, duration, err)
	case check.findings > 0:
		symbol := r.output.String("!").Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s passed with %d finding(s) in %v\n",
			prefix, symbol, check.findings, duration)
	default:
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s passed in %v\n",
			prefix, symbol, duration)
	}

	delete(r.checks, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked prints whatever partial line is left for a check.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	check, ok := r.checks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(check, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints one finding line with the manifest prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(check *checkState, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	check.findings++
	prefix := fmt.Sprintf("[%s]", check.name)
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", prefix, string(line))
}

// Package telemetry implements span collection and the bridge that turns
// spans into renderer events.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultSizeLimit is the buffer size that forces a flush (4KB).
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the flush interval when the buffer stays small (50ms).
	DefaultTimeLimit = 50 * time.Millisecond
)

// BatchProcessor coalesces span output into chunks before handing them to a
// callback. Checks emit findings line by line; without batching every line
// would cross the renderer channel on its own. Thread-safe.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu     sync.Mutex
	buf    *bytes.Buffer
	ticker *time.Ticker
	stopCh chan struct{}
	closed bool
}

// NewBatchProcessor returns a running BatchProcessor. Zero or negative
// limits select the defaults. Call Close to stop the background ticker.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	b := &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		buf:       new(bytes.Buffer),
		stopCh:    make(chan struct{}),
		ticker:    time.NewTicker(timeLimit),
	}

	go b.run()

	return b
}

// Write appends data to the buffer and flushes once sizeLimit is reached.
func (b *BatchProcessor) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errors.New("BatchProcessor is closed")
	}

	n, err = b.buf.Write(p)
	if err != nil {
		return n, err
	}

	if b.buf.Len() >= b.sizeLimit {
		b.flushLocked()
		// A size-triggered flush restarts the clock
		b.ticker.Reset(b.timeLimit)
	}

	return n, nil
}

// Flush hands any buffered data to the callback immediately.
func (b *BatchProcessor) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.flushLocked()
}

// Close stops the background flusher after a final flush.
func (b *BatchProcessor) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	close(b.stopCh)
	b.flushLocked()
	return nil
}

func (b *BatchProcessor) run() {
	for {
		select {
		case <-b.ticker.C:
			b.Flush()
		case <-b.stopCh:
			b.ticker.Stop()
			return
		}
	}
}

// flushLocked must be called with mu held. The callback runs under the lock
// to preserve chunk order, so it must be fast (sending to a channel).
func (b *BatchProcessor) flushLocked() {
	if b.buf.Len() == 0 {
		return
	}

	data := make([]byte, b.buf.Len())
	copy(data, b.buf.Bytes())
	b.buf.Reset()

	if b.onFlush != nil {
		b.onFlush(data)
	}
}

package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinch/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// DigestCacheNodeID is the unique identifier for the digest cache Graft node.
	DigestCacheNodeID graft.ID = "adapter.watcher.digest_cache"
)

func init() {
	// Watcher Node
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})

	// DigestCache Node
	graft.Register(graft.Node[*DigestCache]{
		ID:        DigestCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*DigestCache, error) {
			return NewDigestCache(), nil
		},
	})
}

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 200 * time.Millisecond

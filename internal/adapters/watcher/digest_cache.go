package watcher

import (
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// DigestCache remembers the content digest of each watched manifest so
// a save that leaves the bytes unchanged does not trigger a re-check.
// Editors rewrite files on save even when nothing changed; comparing
// digests filters those out before the debouncer hands us the batch.
type DigestCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewDigestCache creates an empty digest cache.
func NewDigestCache() *DigestCache {
	return &DigestCache{
		digests: make(map[unique.Handle[string]]uint64),
	}
}

// Changed reports whether the file's content differs from the last seen
// digest and records the new digest. Paths never seen before report
// changed. Files that cannot be read are dropped from the cache and
// report changed so the check run surfaces the read error itself.
func (c *DigestCache) Changed(path string) bool {
	handle := unique.Make(path)

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the watcher's own event stream
	if err != nil {
		c.mu.Lock()
		delete(c.digests, handle)
		c.mu.Unlock()
		return true
	}

	digest := xxhash.Sum64(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	previous, seen := c.digests[handle]
	c.digests[handle] = digest

	return !seen || previous != digest
}

// Forget drops the cached digest for the path. The next event for it
// will always report changed.
func (c *DigestCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.digests, unique.Make(path))
}

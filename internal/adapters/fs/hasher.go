package fs

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests for manifests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest computes a digest over the manifest's declaration set. Entries
// are keyed by canonical package name and sorted, so reordering lines,
// editing comments or respelling a name does not change the digest; any
// change to the set itself does.
func (h *Hasher) Digest(m *domain.Manifest) (string, error) {
	entries := make([]string, 0, m.DeclarationCount())
	for _, decl := range m.Declarations() {
		entries = append(entries, decl.Canonical()+decl.Constraint.String())
	}
	sort.Strings(entries)

	hasher := xxhash.New()
	for _, entry := range entries {
		_, _ = hasher.WriteString(entry)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

package ports

import "go.trai.ch/pinch/internal/core/domain"

// SnapshotStore defines the interface for storing and retrieving
// manifest snapshots.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot for a given manifest path.
	// Returns nil, nil if not found.
	Get(root, manifestPath string) (*domain.Snapshot, error)

	// Put stores the snapshot.
	Put(root string, snap domain.Snapshot) error

	// Delete removes the snapshot for a given manifest path. Deleting a
	// snapshot that does not exist is not an error.
	Delete(root, manifestPath string) error

	// Clean removes the entire .pinch directory under root.
	Clean(root string) error
}

package ports

import "go.trai.ch/pinch/internal/core/domain"

// Hasher defines the interface for computing manifest digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Digest computes a stable digest of the manifest's declaration set.
	// Comment and blank lines do not contribute, so reformatting does
	// not count as drift.
	Digest(m *domain.Manifest) (string, error)
}

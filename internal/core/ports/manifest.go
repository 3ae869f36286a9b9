package ports

import "go.trai.ch/pinch/internal/core/domain"

//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks

// ManifestLoader reads and parses requirements manifests.
type ManifestLoader interface {
	// Load reads the manifest at path. Grammar defects are reported as
	// findings, not errors: the manifest is still returned with its raw
	// lines intact. The error is reserved for I/O failures and
	// non-UTF-8 input.
	Load(path string) (*domain.Manifest, domain.Findings, error)

	// Parse parses manifest content that is already in memory.
	Parse(path string, data []byte) (*domain.Manifest, domain.Findings, error)
}

// ManifestWriter serializes manifests.
type ManifestWriter interface {
	// Render reproduces the manifest byte for byte as it was parsed.
	Render(m *domain.Manifest) []byte

	// Canonical renders the formatted form: declarations sorted by
	// canonical name with attached comments kept above their declaration.
	Canonical(m *domain.Manifest) []byte

	// WriteFile writes rendered content back to the manifest's path.
	WriteFile(m *domain.Manifest, data []byte) error
}

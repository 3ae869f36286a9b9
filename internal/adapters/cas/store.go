// Package cas implements snapshot storage under the .pinch directory.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore using a file-per-manifest strategy.
type Store struct{}

// NewStore creates a new SnapshotStore. All operations take an explicit
// project root, so the store itself is stateless.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the snapshot for a given manifest path.
func (s *Store) Get(root, manifestPath string) (*domain.Snapshot, error) {
	filename := s.getFilename(root, manifestPath)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &snap, nil
}

// Put stores the snapshot. The stored path is rewritten relative to the
// project root so a relocated project keeps its history.
func (s *Store) Put(root string, snap domain.Snapshot) error {
	snap.Path = storeKey(root, snap.Path)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, snap.Path)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Delete removes the snapshot for a given manifest path. A snapshot that
// was never taken is not an error.
func (s *Store) Delete(root, manifestPath string) error {
	filename := s.getFilename(root, manifestPath)
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, domain.ErrCleanFailed.Error())
	}
	return nil
}

// Clean removes the .pinch directory under root. A missing directory is
// not an error.
func (s *Store) Clean(root string) error {
	pinchDir := filepath.Join(root, domain.DefaultPinchPath())
	if err := os.RemoveAll(pinchDir); err != nil {
		return zerr.Wrap(err, domain.ErrCleanFailed.Error())
	}
	return nil
}

func (s *Store) getFilename(root, manifestPath string) string {
	hash := sha256.Sum256([]byte(storeKey(root, manifestPath)))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hexHash+".json")
}

// storeKey normalizes a manifest path to its root-relative form.
func storeKey(root, manifestPath string) string {
	if !filepath.IsAbs(manifestPath) {
		return filepath.Clean(manifestPath)
	}
	rel, err := filepath.Rel(root, manifestPath)
	if err != nil {
		return filepath.Clean(manifestPath)
	}
	return rel
}

package domain

import "path/filepath"

const (
	// PinchDirName is the name of the internal workspace directory.
	PinchDirName = ".pinch"

	// StoreDirName is the name of the snapshot store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "pinch.yaml"

	// DefaultManifestPattern is the glob used when no configuration
	// names any manifests.
	DefaultManifestPattern = "requirements*.txt"

	// MaxManifestSize is the largest manifest the loader accepts, in
	// bytes. Requirements files are small; anything past this is a
	// mis-pointed path, not a manifest.
	MaxManifestSize = 4 << 20

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultPinchPath returns the default root directory for pinch metadata.
func DefaultPinchPath() string {
	return PinchDirName
}

// DefaultStorePath returns the default path for the snapshot store.
// It joins .pinch and store.
func DefaultStorePath() string {
	return filepath.Join(PinchDirName, StoreDirName)
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyDeclaration is returned when a declaration line has no content.
	ErrEmptyDeclaration = zerr.New("empty declaration")

	// ErrWhitespaceInDeclaration is returned when a declaration line contains whitespace.
	ErrWhitespaceInDeclaration = zerr.New("whitespace is not allowed in a declaration")

	// ErrCarriageReturn is returned when a declaration line ends with a carriage return.
	ErrCarriageReturn = zerr.New("carriage return before end of line")

	// ErrMissingOperator is returned when a declaration has no constraint operator.
	ErrMissingOperator = zerr.New("missing constraint operator, expected <name><operator><version>")

	// ErrInvalidOperator is returned when a declaration uses an unrecognized constraint operator.
	ErrInvalidOperator = zerr.New("unrecognized constraint operator")

	// ErrInvalidPackageName is returned when a package name violates the name grammar.
	ErrInvalidPackageName = zerr.New("package name must start and end with a letter or digit and may contain '.', '-', '_'")

	// ErrInvalidVersion is returned when a version cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrCompatibleReleaseTooShort is returned when a compatible release constraint names fewer than two release segments.
	ErrCompatibleReleaseTooShort = zerr.New("compatible release constraint requires at least two release segments")

	// ErrLocalVersionInConstraint is returned when an ordered or compatible release constraint carries a local version label.
	ErrLocalVersionInConstraint = zerr.New("local version label is not allowed in this constraint")

	// ErrPrefixNotAllowed is returned when a '.*' suffix is used outside of == and != constraints.
	ErrPrefixNotAllowed = zerr.New("'.*' suffix is only allowed with == and !=")

	// ErrDuplicateDeclaration is returned when a manifest declares the same package twice.
	ErrDuplicateDeclaration = zerr.New("duplicate declaration")

	// ErrNotUTF8 is returned when a manifest is not valid UTF-8.
	ErrNotUTF8 = zerr.New("manifest is not valid UTF-8")

	// ErrManifestNotFound is returned when a named manifest does not exist.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestReadFailed is returned when a manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestTooLarge is returned when a manifest exceeds MaxManifestSize.
	ErrManifestTooLarge = zerr.New("manifest exceeds maximum size")

	// ErrManifestWriteFailed is returned when a manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrNoManifestsFound is returned when resolution yields no manifests to work on.
	ErrNoManifestsFound = zerr.New("no manifests found")

	// ErrCheckFailed is returned when a check run produced error findings.
	ErrCheckFailed = zerr.New("check failed")

	// ErrManifestsDiffer is returned by diff when the two manifests are not equivalent.
	ErrManifestsDiffer = zerr.New("manifests differ")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidManifestPattern is returned when a manifest glob pattern is malformed.
	ErrInvalidManifestPattern = zerr.New("invalid manifest pattern")

	// ErrInvalidPolicyOperator is returned when the policy names an unknown constraint operator.
	ErrInvalidPolicyOperator = zerr.New("unknown constraint operator in policy")

	// ErrInvalidDriftLevel is returned when the drift level is invalid.
	ErrInvalidDriftLevel = zerr.New("invalid drift level, expected 'off', 'warn' or 'error'")

	// ErrStoreCreateFailed is returned when the snapshot store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrStoreReadFailed is returned when a snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot")

	// ErrStoreUnmarshalFailed is returned when a snapshot cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot")

	// ErrStoreMarshalFailed is returned when a snapshot cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrStoreWriteFailed is returned when a snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot")

	// ErrCleanFailed is returned when removing the .pinch directory fails.
	ErrCleanFailed = zerr.New("failed to remove .pinch directory")

	// ErrWriteHashFailed is returned when writing to the digest fails.
	ErrWriteHashFailed = zerr.New("failed to write hash to digest")

	// ErrWatcherCreateFailed is returned when the file watcher cannot be created.
	ErrWatcherCreateFailed = zerr.New("failed to create file watcher")

	// ErrWatchPathFailed is returned when a path cannot be added to the watcher.
	ErrWatchPathFailed = zerr.New("failed to watch path")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")
)

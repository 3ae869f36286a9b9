// Package fs resolves manifest patterns and digests manifest content.
package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestResolver = (*Resolver)(nil)

// Resolver implements the ManifestResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands the manifest patterns relative to root into a sorted,
// deduplicated list of file paths. A literal path that matches nothing
// is a missing manifest; a glob with no matches is allowed as long as
// the overall result is non-empty.
func (r *Resolver) Resolve(patterns []string, root string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		path := filepath.Join(root, pattern)

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidManifestPattern, "pattern", pattern)
		}

		if len(matches) == 0 {
			if !hasGlobMeta(pattern) {
				return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
			}
			continue
		}

		for _, match := range matches {
			// Glob matches directories too, manifests are files.
			info, statErr := os.Stat(match)
			if statErr != nil || info.IsDir() {
				continue
			}
			uniquePaths[match] = true
		}
	}

	if len(uniquePaths) == 0 {
		return nil, zerr.With(domain.ErrNoManifestsFound, "patterns", strings.Join(patterns, ", "))
	}

	// Convert map to slice and sort
	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// Package config provides the configuration loader for pinch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Mode represents the configuration mode of pinch.
type Mode string

const (
	// ModeWorkspace indicates that a pinch.yaml governs the run.
	ModeWorkspace Mode = "workspace"
	// ModeStandalone indicates that no pinch.yaml was found and the
	// built-in defaults apply to the working directory.
	ModeStandalone Mode = "standalone"
)

// Load resolves the project configuration for the given working
// directory. It walks upward looking for pinch.yaml; without one the
// run is standalone, checking requirements*.txt in cwd with the default
// policy.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, mode := l.findConfiguration(cwd)

	if mode == ModeStandalone {
		return &domain.Project{
			Root:       filepath.Clean(cwd),
			Patterns:   []string{domain.DefaultManifestPattern},
			Policy:     domain.DefaultPolicy(),
			Standalone: true,
		}, nil
	}

	return l.loadPinchfile(configPath)
}

func (l *Loader) findConfiguration(cwd string) (string, Mode) {
	// The walk needs an absolute path: filepath.Dir(".") is "." again,
	// so a relative cwd would never ascend.
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		currentDir = cwd
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, ModeWorkspace
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", ModeStandalone
}

func (l *Loader) loadPinchfile(configPath string) (*domain.Project, error) {
	var pinchfile Pinchfile
	if err := readAndUnmarshalYAML(configPath, &pinchfile); err != nil {
		return nil, err
	}

	if err := validateVersion(pinchfile.Version); err != nil {
		return nil, err
	}

	patterns, err := l.resolvePatterns(pinchfile.Manifests)
	if err != nil {
		return nil, err
	}

	policy, err := l.buildPolicy(pinchfile.Policy)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		Root:     resolveRoot(configPath, pinchfile.Root),
		Patterns: patterns,
		Policy:   policy,
	}, nil
}

// resolvePatterns validates the configured manifest globs. An empty list
// falls back to the default pattern.
func (l *Loader) resolvePatterns(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		l.Logger.Warn(fmt.Sprintf("no manifests configured, defaulting to %s", domain.DefaultManifestPattern))
		return []string{domain.DefaultManifestPattern}, nil
	}

	for _, pattern := range patterns {
		if pattern == "" {
			return nil, zerr.With(domain.ErrInvalidManifestPattern, "pattern", "(empty)")
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, zerr.With(domain.ErrInvalidManifestPattern, "pattern", pattern)
		}
	}

	return patterns, nil
}

func (l *Loader) buildPolicy(dto *PolicyDTO) (domain.Policy, error) {
	policy := domain.DefaultPolicy()
	if dto == nil {
		return policy, nil
	}

	operators := make([]domain.Operator, 0, len(dto.Operators))
	for _, raw := range dto.Operators {
		op, err := domain.ParseOperator(raw)
		if err != nil {
			return domain.Policy{}, zerr.With(domain.ErrInvalidPolicyOperator, "operator", raw)
		}
		operators = append(operators, op)
	}
	policy.Operators = operators

	policy.Forbid = canonicalizeNames(dto.Forbid)
	policy.Require = canonicalizeNames(dto.Require)

	for _, name := range policy.Require {
		if policy.Forbidden(name.String()) {
			l.Logger.Warn(fmt.Sprintf("package %q is both forbidden and required, every check will fail", name.String()))
		}
	}

	if dto.Drift != "" {
		level := domain.DriftLevel(dto.Drift)
		if !level.Valid() {
			return domain.Policy{}, zerr.With(domain.ErrInvalidDriftLevel, "drift", dto.Drift)
		}
		policy.Drift = level
	}

	return policy, nil
}

func validateVersion(version string) error {
	if version == "" || version == "1" {
		return nil
	}
	return zerr.With(domain.ErrUnsupportedConfigVersion, "version", version)
}

// canonicalizeNames lowercases and folds package names, then sorts,
// deduplicates and interns them.
func canonicalizeNames(names []string) []domain.InternedString {
	if len(names) == 0 {
		return nil
	}

	canonical := make([]string, len(names))
	for i, name := range names {
		canonical[i] = domain.CanonicalName(name)
	}
	slices.Sort(canonical)

	unique := slices.Compact(canonical)
	return domain.NewInternedStrings(unique)
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered under the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

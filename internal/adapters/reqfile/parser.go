// Package reqfile parses and serializes pip-style requirements manifests.
package reqfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.ManifestLoader. Parsing never aborts on a bad
// line: the raw text is kept so the manifest still round-trips and later
// lines still surface their own findings.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the manifest at path.
func (l *Loader) Load(path string) (*domain.Manifest, domain.Findings, error) {
	//nolint:gosec // Manifest paths come from config patterns and CLI args
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	if len(data) > domain.MaxManifestSize {
		err := zerr.With(domain.ErrManifestTooLarge, "manifest", path)
		return nil, nil, zerr.With(err, "size", len(data))
	}
	return l.Parse(path, data)
}

// Parse parses manifest content. Each line is classified as blank,
// comment or declaration; declaration lines must match
// <name><operator><version> with no whitespace. Grammar defects become
// findings, non-UTF-8 input is an error for the whole file.
func (l *Loader) Parse(path string, data []byte) (*domain.Manifest, domain.Findings, error) {
	if !utf8.Valid(data) {
		return nil, nil, zerr.With(domain.ErrNotUTF8, "manifest", path)
	}

	m := &domain.Manifest{Path: path}
	if len(data) == 0 {
		return m, nil, nil
	}

	text := string(data)
	m.NoFinalNewline = !strings.HasSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	if !m.NoFinalNewline {
		// Split leaves an empty tail after the final newline.
		lines = lines[:len(lines)-1]
	}

	var findings domain.Findings
	for i, raw := range lines {
		line := domain.Line{Number: i + 1, Raw: raw}

		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "":
			line.Kind = domain.LineBlank
		case strings.HasPrefix(trimmed, "#"):
			line.Kind = domain.LineComment
		default:
			line.Kind = domain.LineDeclaration
			decl, err := domain.ParseDeclaration(raw)
			if err != nil {
				findings = append(findings, domain.Finding{
					Rule:     domain.RuleSyntax,
					Severity: domain.SeverityError,
					Manifest: path,
					Line:     line.Number,
					Message:  err.Error(),
				})
			} else {
				line.Decl = &decl
			}
		}

		m.Lines = append(m.Lines, line)
	}

	return m, findings, nil
}

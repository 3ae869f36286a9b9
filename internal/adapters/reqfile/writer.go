package reqfile

import (
	"os"
	"slices"
	"strings"

	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ManifestWriter.
type Writer struct{}

// NewWriter creates a new manifest writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Render reproduces the manifest byte for byte: raw lines joined with
// newlines, honoring whether the source ended without one.
func (w *Writer) Render(m *domain.Manifest) []byte {
	if len(m.Lines) == 0 {
		return nil
	}

	var b strings.Builder
	for i, ln := range m.Lines {
		b.WriteString(ln.Raw)
		if i < len(m.Lines)-1 || !m.NoFinalNewline {
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

// Canonical renders the formatted form. A comment block sitting directly
// above a declaration travels with it; free-standing comment blocks stay
// at the top in their original order, trailing ones at the bottom.
// Declarations are sorted by canonical package name and the output always
// ends with exactly one newline.
func (w *Writer) Canonical(m *domain.Manifest) []byte {
	type group struct {
		key      string
		comments []string
		decl     string
	}

	var header []string
	var groups []group
	var pending []string

	for _, ln := range m.Lines {
		switch ln.Kind {
		case domain.LineComment:
			pending = append(pending, ln.Raw)
		case domain.LineBlank:
			// A blank line breaks attachment: the run above it is
			// free-standing.
			header = append(header, pending...)
			pending = nil
		case domain.LineDeclaration:
			g := group{comments: pending, decl: ln.Raw}
			if ln.Decl != nil {
				g.key = ln.Decl.Canonical()
			} else {
				g.key = strings.ToLower(ln.Raw)
			}
			groups = append(groups, g)
			pending = nil
		}
	}
	footer := pending

	slices.SortStableFunc(groups, func(a, b group) int {
		return strings.Compare(a.key, b.key)
	})

	var sections [][]string
	if len(header) > 0 {
		sections = append(sections, header)
	}
	if len(groups) > 0 {
		var body []string
		for _, g := range groups {
			body = append(body, g.comments...)
			body = append(body, g.decl)
		}
		sections = append(sections, body)
	}
	if len(footer) > 0 {
		sections = append(sections, footer)
	}

	if len(sections) == 0 {
		return nil
	}

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, line := range section {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

// WriteFile writes rendered content back to the manifest's path.
func (w *Writer) WriteFile(m *domain.Manifest, data []byte) error {
	//nolint:gosec // Manifest paths come from config patterns and CLI args
	if err := os.WriteFile(m.Path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

package domain

import "iter"

// LineKind classifies a manifest line.
type LineKind int

const (
	// LineBlank is an empty or whitespace-only line.
	LineBlank LineKind = iota

	// LineComment is a line whose first non-blank character is '#'.
	LineComment

	// LineDeclaration is a dependency declaration line.
	LineDeclaration
)

// Line is one physical line of a manifest. Raw holds the exact text
// without the trailing newline so a manifest can be written back byte
// for byte, including lines that failed to parse.
type Line struct {
	Number int
	Kind   LineKind
	Raw    string

	// Decl is set for LineDeclaration lines that parsed cleanly.
	Decl *Declaration
}

// Manifest is a parsed requirements file. Declarations form an unordered
// set keyed by canonical package name; the line structure is kept purely
// so serialization reproduces the source.
type Manifest struct {
	Path  string
	Lines []Line

	// NoFinalNewline records that the source did not end with '\n'.
	NoFinalNewline bool
}

// Declarations returns the parsed declarations in file order.
func (m *Manifest) Declarations() []Declaration {
	var res []Declaration
	for _, ln := range m.Lines {
		if ln.Decl != nil {
			res = append(res, *ln.Decl)
		}
	}
	return res
}

// Walk yields the manifest's lines in order.
func (m *Manifest) Walk() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, ln := range m.Lines {
			if !yield(ln) {
				return
			}
		}
	}
}

// Find returns the first declaration matching the canonical package name.
func (m *Manifest) Find(name string) (Declaration, bool) {
	canonical := CanonicalName(name)
	for _, ln := range m.Lines {
		if ln.Decl != nil && ln.Decl.Canonical() == canonical {
			return *ln.Decl, true
		}
	}
	return Declaration{}, false
}

// DeclarationCount returns the number of parsed declarations.
func (m *Manifest) DeclarationCount() int {
	n := 0
	for _, ln := range m.Lines {
		if ln.Decl != nil {
			n++
		}
	}
	return n
}

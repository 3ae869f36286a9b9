package domain

import (
	"regexp"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// namePattern is the package name grammar: leading and trailing
// alphanumerics with '.', '-' and '_' allowed in between.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// canonicalSeparators matches the separator runs that canonicalization
// folds to a single hyphen.
var canonicalSeparators = regexp.MustCompile(`[-_.]+`)

// Declaration is one dependency declaration: a package name bound to a
// version constraint.
type Declaration struct {
	Name       InternedString
	Constraint Constraint
}

// ParseDeclaration parses a declaration such as "boto3~=1.20.9". The
// grammar is strict: <name><operator><version> with no whitespace, so
// "boto3 1.20.9" is rejected.
func ParseDeclaration(s string) (Declaration, error) {
	if s == "" {
		return Declaration{}, ErrEmptyDeclaration
	}
	if strings.ContainsRune(s, '\r') {
		return Declaration{}, zerr.With(ErrCarriageReturn, "declaration", strings.TrimRight(s, "\r"))
	}
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return Declaration{}, zerr.With(ErrWhitespaceInDeclaration, "column", i+1)
	}

	opIdx := strings.IndexAny(s, "~=!<>")
	if opIdx < 0 {
		return Declaration{}, zerr.With(ErrMissingOperator, "declaration", s)
	}

	name := s[:opIdx]
	if !namePattern.MatchString(name) {
		return Declaration{}, zerr.With(ErrInvalidPackageName, "name", name)
	}

	op, ok := matchOperator(s[opIdx:])
	if !ok {
		return Declaration{}, zerr.With(ErrInvalidOperator, "declaration", s)
	}

	constraint, err := NewConstraint(op, s[opIdx+len(op):])
	if err != nil {
		return Declaration{}, err
	}

	return Declaration{
		Name:       NewInternedString(name),
		Constraint: constraint,
	}, nil
}

// CanonicalName normalizes a package name for comparison: lowercased,
// with runs of '-', '_' and '.' folded to a single '-'. "Boto3" and
// "boto3" declare the same package, as do "python-dateutil" and
// "python_dateutil".
func CanonicalName(name string) string {
	return canonicalSeparators.ReplaceAllString(strings.ToLower(name), "-")
}

// Canonical returns the declaration's canonical package name.
func (d Declaration) Canonical() string {
	return CanonicalName(d.Name.String())
}

// String returns the declaration in manifest form.
func (d Declaration) String() string {
	return d.Name.String() + d.Constraint.String()
}

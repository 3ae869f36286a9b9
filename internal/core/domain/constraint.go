package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Constraint is a version constraint: an operator applied to a version.
// The raw version text is interned because the same pins repeat across
// manifests in a workspace.
type Constraint struct {
	Op      Operator
	Version InternedString

	// prefix is set for the "==1.20.*" and "!=1.20.*" forms.
	prefix bool

	// parsed is the comparison key. It stays zero for ===, which never
	// orders versions.
	parsed Version
}

// NewConstraint builds a constraint and validates the version against the
// operator's rules: ~= needs at least two release segments and no local
// label, ordered comparisons reject local labels and '.*', and === takes
// the version text verbatim.
func NewConstraint(op Operator, version string) (Constraint, error) {
	c := Constraint{Op: op, Version: NewInternedString(version)}

	if version == "" {
		return Constraint{}, zerr.With(ErrInvalidVersion, "reason", "empty version")
	}

	if op == OpArbitraryEqual {
		return c, nil
	}

	text := version
	if strings.HasSuffix(text, ".*") {
		if op != OpEqual && op != OpNotEqual {
			return Constraint{}, zerr.With(ErrPrefixNotAllowed, "constraint", string(op)+version)
		}
		c.prefix = true
		text = strings.TrimSuffix(text, ".*")
	}

	parsed, err := ParseVersion(text)
	if err != nil {
		return Constraint{}, err
	}
	c.parsed = parsed

	if op == OpCompatible && len(parsed.Release) < 2 {
		return Constraint{}, zerr.With(ErrCompatibleReleaseTooShort, "constraint", string(op)+version)
	}
	if parsed.Local != "" && op != OpEqual && op != OpNotEqual {
		return Constraint{}, zerr.With(ErrLocalVersionInConstraint, "constraint", string(op)+version)
	}

	return c, nil
}

// ParseConstraint splits a constraint spelling such as "~=1.20.9" into
// its operator and version.
func ParseConstraint(s string) (Constraint, error) {
	op, ok := matchOperator(s)
	if !ok {
		return Constraint{}, zerr.With(ErrMissingOperator, "constraint", s)
	}
	return NewConstraint(op, s[len(op):])
}

// String returns the constraint as written in a manifest.
func (c Constraint) String() string {
	return string(c.Op) + c.Version.String()
}

// Allows reports whether v satisfies the constraint.
//
// The compatible release operator pins the release prefix: ~=1.20.9
// allows 1.20.9 and 1.20.10 but not 1.20.8 or 1.21.0.
func (c Constraint) Allows(v Version) bool {
	switch c.Op {
	case OpArbitraryEqual:
		return v.String() == c.Version.String()
	case OpEqual:
		return c.matchesEqual(v)
	case OpNotEqual:
		return !c.matchesEqual(v)
	case OpCompatible:
		return v.Compare(c.parsed) >= 0 &&
			v.Epoch == c.parsed.Epoch &&
			v.releaseMatchesPrefix(c.parsed.truncatedRelease())
	case OpLess:
		return v.Compare(c.parsed) < 0
	case OpLessEqual:
		return v.Compare(c.parsed) <= 0
	case OpGreater:
		return v.Compare(c.parsed) > 0
	case OpGreaterEqual:
		return v.Compare(c.parsed) >= 0
	default:
		return false
	}
}

// AllowsString parses v and evaluates the constraint against it.
func (c Constraint) AllowsString(v string) (bool, error) {
	parsed, err := ParseVersion(v)
	if err != nil {
		return false, err
	}
	return c.Allows(parsed), nil
}

func (c Constraint) matchesEqual(v Version) bool {
	if c.prefix {
		return v.Epoch == c.parsed.Epoch && v.releaseMatchesPrefix(c.parsed.Release)
	}
	// A constraint without a local label ignores the candidate's local
	// label, so ==1.20.9 matches 1.20.9+build1.
	if c.parsed.Local == "" {
		stripped := v
		stripped.Local = ""
		return stripped.Equal(c.parsed)
	}
	return v.Equal(c.parsed)
}

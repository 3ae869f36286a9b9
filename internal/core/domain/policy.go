package domain

// DriftLevel controls how the checker treats divergence from a recorded
// snapshot.
type DriftLevel string

const (
	// DriftOff disables the drift rule.
	DriftOff DriftLevel = "off"

	// DriftWarn reports drift as a warning.
	DriftWarn DriftLevel = "warn"

	// DriftError reports drift as an error, failing the check.
	DriftError DriftLevel = "error"
)

// Valid reports whether the drift level is one of the known values.
func (d DriftLevel) Valid() bool {
	switch d {
	case DriftOff, DriftWarn, DriftError:
		return true
	default:
		return false
	}
}

// Severity returns the finding severity for this drift level.
func (d DriftLevel) Severity() Severity {
	if d == DriftError {
		return SeverityError
	}
	return SeverityWarning
}

// Policy configures the checker beyond the structural rules.
type Policy struct {
	// Operators restricts the constraint operators declarations may use.
	// Empty allows all of them.
	Operators []Operator

	// Forbid lists packages that must not appear, by canonical name.
	Forbid []InternedString

	// Require lists packages every manifest must declare, by canonical name.
	Require []InternedString

	// Drift selects how snapshot divergence is reported.
	Drift DriftLevel
}

// DefaultPolicy allows every operator, requires nothing and reports
// drift as warnings.
func DefaultPolicy() Policy {
	return Policy{Drift: DriftWarn}
}

// OperatorAllowed reports whether the policy permits the operator.
func (p Policy) OperatorAllowed(op Operator) bool {
	if len(p.Operators) == 0 {
		return true
	}
	for _, allowed := range p.Operators {
		if allowed == op {
			return true
		}
	}
	return false
}

// Forbidden reports whether the canonical package name is on the forbid
// list.
func (p Policy) Forbidden(canonical string) bool {
	for _, name := range p.Forbid {
		if name.String() == canonical {
			return true
		}
	}
	return false
}

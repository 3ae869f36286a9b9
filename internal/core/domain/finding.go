package domain

import "fmt"

// Severity grades a finding.
type Severity int

const (
	// SeverityInfo findings are informational and never fail a check.
	SeverityInfo Severity = iota

	// SeverityWarning findings are reported but do not fail a check.
	SeverityWarning

	// SeverityError findings fail the check.
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Rule identifies the check that produced a finding.
type Rule string

const (
	// RuleSyntax covers the line grammar: <name><operator><version>.
	RuleSyntax Rule = "syntax"

	// RuleEncoding covers UTF-8 validity.
	RuleEncoding Rule = "encoding"

	// RuleDuplicate covers canonical package name uniqueness.
	RuleDuplicate Rule = "duplicate"

	// RuleOperator covers the policy's allowed operator set.
	RuleOperator Rule = "operator"

	// RuleForbidden covers the policy's forbidden package list.
	RuleForbidden Rule = "forbidden"

	// RuleRequired covers the policy's required package list.
	RuleRequired Rule = "required"

	// RuleDrift covers divergence from the recorded snapshot.
	RuleDrift Rule = "drift"
)

// Finding is one checker result for a manifest.
type Finding struct {
	Rule     Rule
	Severity Severity
	Manifest string

	// Line is 1-based; zero means the finding applies to the whole file.
	Line int

	Message string
}

// String renders the finding the way editors expect: path:line: message.
func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d: %s (%s)", f.Manifest, f.Line, f.Message, f.Rule)
	}
	return fmt.Sprintf("%s: %s (%s)", f.Manifest, f.Message, f.Rule)
}

// Findings is an ordered list of findings.
type Findings []Finding

// HasErrors reports whether any finding is error severity.
func (fs Findings) HasErrors() bool {
	for _, f := range fs {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of findings with the given severity.
func (fs Findings) Count(sev Severity) int {
	n := 0
	for _, f := range fs {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Operator is a constraint operator as written in a manifest.
type Operator string

const (
	// OpCompatible is the compatible release operator (~=).
	OpCompatible Operator = "~="

	// OpEqual is the version matching operator (==).
	OpEqual Operator = "=="

	// OpNotEqual is the version exclusion operator (!=).
	OpNotEqual Operator = "!="

	// OpLessEqual is the inclusive upper bound operator (<=).
	OpLessEqual Operator = "<="

	// OpGreaterEqual is the inclusive lower bound operator (>=).
	OpGreaterEqual Operator = ">="

	// OpLess is the exclusive upper bound operator (<).
	OpLess Operator = "<"

	// OpGreater is the exclusive lower bound operator (>).
	OpGreater Operator = ">"

	// OpArbitraryEqual is the arbitrary equality operator (===).
	// It compares version text verbatim with no ordering semantics.
	OpArbitraryEqual Operator = "==="
)

// operators lists all constraint operators in longest-match-first order so
// that a scan never reads "===" as "==" followed by "=".
var operators = []Operator{
	OpArbitraryEqual,
	OpCompatible,
	OpEqual,
	OpNotEqual,
	OpLessEqual,
	OpGreaterEqual,
	OpLess,
	OpGreater,
}

// Operators returns all constraint operators.
func Operators() []Operator {
	res := make([]Operator, len(operators))
	copy(res, operators)
	return res
}

// ParseOperator returns the operator for its manifest spelling.
func ParseOperator(s string) (Operator, error) {
	for _, op := range operators {
		if s == string(op) {
			return op, nil
		}
	}
	return "", zerr.With(ErrInvalidOperator, "operator", s)
}

// matchOperator returns the operator at the start of s, longest match first.
func matchOperator(s string) (Operator, bool) {
	for _, op := range operators {
		if strings.HasPrefix(s, string(op)) {
			return op, true
		}
	}
	return "", false
}

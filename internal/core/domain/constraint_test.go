package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinch/internal/core/domain"
)

func TestConstraint_AllowsCompatibleRelease(t *testing.T) {
	// ~=1.20.9 pins the 1.20 series at or above 1.20.9.
	constraint, err := domain.ParseConstraint("~=1.20.9")
	require.NoError(t, err)

	tests := []struct {
		version string
		allowed bool
	}{
		{version: "1.20.9", allowed: true},
		{version: "1.20.10", allowed: true},
		{version: "1.20.99", allowed: true},
		{version: "1.20.8", allowed: false},
		{version: "1.21.0", allowed: false},
		{version: "1.21", allowed: false},
		{version: "1.19.9", allowed: false},
		{version: "2.0.0", allowed: false},
		{version: "1!1.20.9", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := constraint.AllowsString(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, got)
		})
	}
}

func TestConstraint_Allows(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		allowed    bool
	}{
		{name: "exact match", constraint: "==2.28.1", version: "2.28.1", allowed: true},
		{name: "exact mismatch", constraint: "==2.28.1", version: "2.28.2", allowed: false},
		{name: "exact ignores trailing zero", constraint: "==1.20", version: "1.20.0", allowed: true},
		{name: "exact ignores candidate local", constraint: "==1.20.9", version: "1.20.9+build1", allowed: true},
		{name: "prefix match", constraint: "==1.23.*", version: "1.23.45", allowed: true},
		{name: "prefix mismatch", constraint: "==1.23.*", version: "1.24.0", allowed: false},
		{name: "exclusion hit", constraint: "!=1.26.0", version: "1.26.0", allowed: false},
		{name: "exclusion miss", constraint: "!=1.26.0", version: "1.26.1", allowed: true},
		{name: "lower bound inclusive", constraint: ">=7.0.0", version: "7.0.0", allowed: true},
		{name: "lower bound excludes below", constraint: ">=7.0.0", version: "6.9", allowed: false},
		{name: "upper bound exclusive", constraint: "<6", version: "6.0", allowed: false},
		{name: "upper bound allows below", constraint: "<6", version: "5.99", allowed: true},
		{name: "upper bound inclusive equal", constraint: "<=3.0", version: "3.0", allowed: true},
		{name: "greater than", constraint: ">1.0", version: "1.0.1", allowed: true},
		{name: "greater than pre-release", constraint: ">1.0", version: "1.1rc1", allowed: true},
		{name: "compatible release minor series", constraint: "~=2.2", version: "2.9", allowed: true},
		{name: "compatible release major jump", constraint: "~=2.2", version: "3.0", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraint, err := domain.ParseConstraint(tt.constraint)
			require.NoError(t, err)

			got, err := constraint.AllowsString(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, got, "%s against %s", tt.constraint, tt.version)
		})
	}
}

func TestConstraint_ArbitraryEquality(t *testing.T) {
	constraint, err := domain.ParseConstraint("===1.0-custom")
	require.NoError(t, err)

	v, err := domain.ParseVersion("1.0")
	require.NoError(t, err)
	assert.False(t, constraint.Allows(v))

	// Arbitrary equality compares text, not parsed versions.
	assert.Equal(t, "===1.0-custom", constraint.String())
}

func TestParseConstraint_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "no operator", input: "1.20.9", wantErr: domain.ErrMissingOperator},
		{name: "empty version", input: "==", wantErr: domain.ErrInvalidVersion},
		{name: "short compatible release", input: "~=2", wantErr: domain.ErrCompatibleReleaseTooShort},
		{name: "prefix on ordered operator", input: ">=1.2.*", wantErr: domain.ErrPrefixNotAllowed},
		{name: "local in ordered operator", input: ">=1.0+local", wantErr: domain.ErrLocalVersionInConstraint},
		{name: "local in compatible release", input: "~=1.0+local", wantErr: domain.ErrLocalVersionInConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseConstraint(tt.input)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinch/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces linear mode", ciValue: "true"},
		{name: "CI=1 forces linear mode", ciValue: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NoTTY(t *testing.T) {
	// Test binaries never run with stdout on a terminal, so without a CI
	// marker detection still lands on linear.
	t.Setenv("CI", "false")

	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects detection (TUI)",
			autoDetected: detector.ModeTUI,
			userFlag:     "auto",
			expected:     detector.ModeTUI,
		},
		{
			name:         "auto respects detection (linear)",
			autoDetected: detector.ModeLinear,
			userFlag:     "auto",
			expected:     detector.ModeLinear,
		},
		{
			name:         "empty flag respects detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "",
			expected:     detector.ModeTUI,
		},
		{
			name:         "tui overrides detection",
			autoDetected: detector.ModeLinear,
			userFlag:     "tui",
			expected:     detector.ModeTUI,
		},
		{
			name:         "linear overrides detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "linear",
			expected:     detector.ModeLinear,
		},
		{
			name:         "ci is an alias for linear",
			autoDetected: detector.ModeTUI,
			userFlag:     "ci",
			expected:     detector.ModeLinear,
		},
		{
			name:         "unknown flag falls back to detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "fancy",
			expected:     detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

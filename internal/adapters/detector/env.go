// Package detector resolves which renderer a run should use.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects the renderer driving a check run.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI selects the interactive TUI renderer.
	ModeTUI
	// ModeLinear selects the line-oriented renderer for CI and pipes.
	ModeLinear
)

// DetectEnvironment recommends an output mode. The TUI only fits when
// stdout is a terminal and no CI system is driving the run.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output-mode flag on top of detection.
// Recognized values are "auto", "tui", "linear" and "ci"; anything else
// falls back to the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

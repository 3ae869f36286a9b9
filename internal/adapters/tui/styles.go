package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pinch/internal/ui/style"
)

var (
	pendingStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	runningStyle = lipgloss.NewStyle().
			Foreground(style.Saffron).
			Bold(true)

	passedStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	warnedStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	failedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Saffron).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Saffron).
			Foreground(style.White)

	listStyle = lipgloss.NewStyle().
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Padding(0, 1)

	summaryOKStyle = lipgloss.NewStyle().
			Foreground(style.Green).
			Bold(true)

	summaryFailStyle = lipgloss.NewStyle().
				Foreground(style.Red).
				Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)

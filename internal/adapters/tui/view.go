package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pinch/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	board := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.manifestList(),
		m.findingsPane(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		board,
		m.summaryLine(),
	)
}

func (m *Model) manifestList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("MANIFESTS") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Manifests) {
		end = len(m.Manifests)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, m.Manifests[i]) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderRow(index int, row *ManifestRow) string {
	icon := statusIcon(row)
	rowStyle := statusStyle(row)

	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if row.Status == StatusPending || row.Status == StatusRunning {
			rowStyle = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s", icon, row.Name)
	if n := len(row.Findings); n > 0 {
		content += fmt.Sprintf(" (%d)", n)
	}
	return cursor + rowStyle.Render(content)
}

func statusIcon(row *ManifestRow) string {
	switch row.Status {
	case StatusRunning:
		return style.Dot
	case StatusPassed:
		return style.Check
	case StatusWarned:
		return style.Warning
	case StatusFailed:
		return style.Cross
	default: // Pending
		return style.Circle
	}
}

func statusStyle(row *ManifestRow) lipgloss.Style {
	switch row.Status {
	case StatusRunning:
		return runningStyle
	case StatusPassed:
		return passedStyle
	case StatusWarned:
		return warnedStyle
	case StatusFailed:
		return failedStyle
	default: // Pending
		return pendingStyle
	}
}

func (m *Model) findingsPane() string {
	var header string
	var content string

	if row := m.selectedRow(); row != nil {
		mode := " (Following)"
		if !m.FollowMode {
			mode = " (Manual)"
		}
		header = titleStyle.Render("FINDINGS: " + row.Name + mode)
		content = m.renderFindings(row)
	} else {
		header = titleStyle.Render("FINDINGS (Waiting...)")
	}

	return paneStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
		),
	)
}

// renderFindings shows the tail of the selected manifest's findings that
// fits the pane.
func (m *Model) renderFindings(row *ManifestRow) string {
	if len(row.Findings) == 0 {
		switch row.Status {
		case StatusPassed:
			return passedStyle.Render("no findings")
		case StatusPending, StatusRunning:
			return pendingStyle.Render("...")
		default:
			return ""
		}
	}

	lines := row.Findings
	if m.PaneHeight > 0 && len(lines) > m.PaneHeight {
		lines = lines[len(lines)-m.PaneHeight:]
	}

	var s strings.Builder
	for _, line := range lines {
		if m.PaneWidth > 0 && len(line) > m.PaneWidth {
			line = line[:m.PaneWidth]
		}
		s.WriteString(line + "\n")
	}
	return s.String()
}

func (m *Model) summaryLine() string {
	var pending, running, passed, warned, failed, findings int
	for _, row := range m.Manifests {
		findings += len(row.Findings)
		switch row.Status {
		case StatusPending:
			pending++
		case StatusRunning:
			running++
		case StatusPassed:
			passed++
		case StatusWarned:
			warned++
		case StatusFailed:
			failed++
		}
	}

	if pending+running > 0 {
		return summaryStyle.Render(fmt.Sprintf(
			" checking %d/%d manifests...", passed+warned+failed, len(m.Manifests)))
	}

	switch {
	case failed > 0:
		return summaryFailStyle.Render(fmt.Sprintf(
			" %s %d of %d manifest(s) failed, %d finding(s)",
			style.Cross, failed, len(m.Manifests), findings))
	case findings > 0:
		return warnedStyle.Render(fmt.Sprintf(
			" %s all %d manifest(s) passed, %d finding(s)",
			style.Warning, len(m.Manifests), findings))
	case len(m.Manifests) > 0:
		return summaryOKStyle.Render(fmt.Sprintf(
			" %s all %d manifest(s) passed", style.Check, len(m.Manifests)))
	default:
		return ""
	}
}

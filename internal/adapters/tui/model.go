package tui

import (
	"bytes"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pinch/internal/adapters/telemetry"
)

const (
	manifestListWidthRatio = 0.35
	findingsPaneBorder     = 4
)

// CheckStatus represents the current state of a manifest check.
type CheckStatus string

const (
	// StatusPending indicates the check is waiting to start.
	StatusPending CheckStatus = "Pending"
	// StatusRunning indicates the check is currently executing.
	StatusRunning CheckStatus = "Running"
	// StatusPassed indicates the manifest passed cleanly.
	StatusPassed CheckStatus = "Passed"
	// StatusWarned indicates the manifest passed but produced findings.
	StatusWarned CheckStatus = "Warned"
	// StatusFailed indicates the manifest failed the check.
	StatusFailed CheckStatus = "Failed"
)

// ManifestRow represents a single manifest in the UI list.
type ManifestRow struct {
	Name     string
	Status   CheckStatus
	Findings []string
	Duration time.Duration

	startTime time.Time
	buf       bytes.Buffer // partial finding line
}

// Model represents the main TUI state.
type Model struct {
	Manifests   []*ManifestRow
	ManifestMap map[string]*ManifestRow
	SpanMap     map[string]*ManifestRow
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	PaneWidth   int
	PaneHeight  int
	FollowMode  bool
}

// NewModel creates an empty model. Rows arrive with the plan message.
func NewModel() *Model {
	return &Model{
		ManifestMap: make(map[string]*ManifestRow),
		SpanMap:     make(map[string]*ManifestRow),
		FollowMode:  true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) selectedRow() *ManifestRow {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Manifests) {
		return m.Manifests[m.SelectedIdx]
	}
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch is inherently branchy
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Manifests)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
			}
		case "esc":
			m.FollowMode = true
			// Jump to the currently running check if any.
			for i, row := range m.Manifests {
				if row.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * manifestListWidthRatio)
		m.PaneWidth = msg.Width - listWidth - findingsPaneBorder

		headerHeight := lipgloss.Height(titleStyle.Render("MANIFESTS") + "\n\n")
		footerHeight := 1
		m.PaneHeight = msg.Height - headerHeight - footerHeight
		m.ListHeight = msg.Height - headerHeight - footerHeight
		m.ensureVisible()

	case telemetry.MsgInitManifests:
		// A fresh plan resets the board; in watch mode this fires once
		// per re-check.
		m.Manifests = make([]*ManifestRow, len(msg.Manifests))
		m.ManifestMap = make(map[string]*ManifestRow, len(msg.Manifests))
		m.SpanMap = make(map[string]*ManifestRow)
		for i, name := range msg.Manifests {
			m.Manifests[i] = &ManifestRow{
				Name:   name,
				Status: StatusPending,
			}
			m.ManifestMap[name] = m.Manifests[i]
		}
		if m.SelectedIdx >= len(m.Manifests) {
			m.SelectedIdx = 0
			m.ListOffset = 0
		}

	case telemetry.MsgCheckStart:
		if row, ok := m.ManifestMap[msg.Name]; ok {
			row.Status = StatusRunning
			row.startTime = msg.StartTime
			m.SpanMap[msg.SpanID] = row

			// Focus follows activity only while FollowMode is on.
			if m.FollowMode {
				for i, r := range m.Manifests {
					if r == row {
						m.SelectedIdx = i
						break
					}
				}
				m.ensureVisible()
			}
		}

	case telemetry.MsgCheckLog:
		if row, ok := m.SpanMap[msg.SpanID]; ok {
			row.appendLog(msg.Data)
		}

	case telemetry.MsgCheckComplete:
		if row, ok := m.SpanMap[msg.SpanID]; ok {
			row.flushLog()
			row.Duration = msg.EndTime.Sub(row.startTime)
			switch {
			case msg.Err != nil:
				row.Status = StatusFailed
			case len(row.Findings) > 0:
				row.Status = StatusWarned
			default:
				row.Status = StatusPassed
			}
		}
	}

	return m, nil
}

// appendLog buffers raw finding output and promotes complete lines.
func (r *ManifestRow) appendLog(data []byte) {
	r.buf.Write(data)
	for {
		line, err := r.buf.ReadBytes('\n')
		if err != nil {
			// Partial line, keep it for the next chunk.
			if len(line) > 0 {
				var rest bytes.Buffer
				rest.Write(line)
				r.buf = rest
			}
			return
		}
		r.addFinding(line)
	}
}

// flushLog promotes whatever partial line is left.
func (r *ManifestRow) flushLog() {
	if r.buf.Len() > 0 {
		r.addFinding(r.buf.Bytes())
		r.buf.Reset()
	}
}

func (r *ManifestRow) addFinding(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	r.Findings = append(r.Findings, string(line))
}

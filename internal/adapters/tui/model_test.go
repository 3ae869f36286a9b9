package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinch/internal/adapters/telemetry"
	"go.trai.ch/pinch/internal/adapters/tui"
	"go.trai.ch/zerr"
)

func TestModel_Update(t *testing.T) {
	const (
		manifest1 = "requirements.txt"
		manifest2 = "dev-requirements.txt"
		manifest3 = "docs-requirements.txt"
		spanID1   = "span-1"
		spanID2   = "span-2"
	)
	initialManifests := []string{manifest1, manifest2, manifest3}

	// Helper to initialize a fresh model
	initModel := func(_ *testing.T) *tui.Model {
		m := tui.NewModel()
		initMsg := telemetry.MsgInitManifests{Manifests: initialManifests}
		updatedModel, _ := m.Update(initMsg)
		return updatedModel.(*tui.Model)
	}

	t.Run("Window Resizing", func(t *testing.T) {
		m := initModel(t)

		width, height := 100, 50
		msg := tea.WindowSizeMsg{Width: width, Height: height}
		updatedModel, _ := m.Update(msg)
		m = updatedModel.(*tui.Model)

		// manifestListWidthRatio = 0.35, findingsPaneBorder = 4
		expectedListWidth := int(float64(width) * 0.35)
		expectedPaneWidth := width - expectedListWidth - 4

		assert.Equal(t, expectedPaneWidth, m.PaneWidth, "PaneWidth calculation incorrect")
		assert.Positive(t, m.ListHeight, "ListHeight should be positive")
		assert.Less(t, m.ListHeight, height, "ListHeight should be less than total height")
		assert.Positive(t, m.PaneHeight, "PaneHeight should be positive")
	})

	t.Run("Navigation & Keybindings", func(t *testing.T) {
		t.Run("Selection Navigation", func(t *testing.T) {
			m := initModel(t)
			m.SelectedIdx = 0

			// Move Down (j)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
			assert.Equal(t, 1, m.SelectedIdx)
			assert.False(t, m.FollowMode, "FollowMode should be disabled on manual nav")

			// Move Down (down key)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, 2, m.SelectedIdx)

			// Bounds check (end of list)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, 2, m.SelectedIdx)

			// Move Up (k)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
			assert.Equal(t, 1, m.SelectedIdx)

			// Move Up (up key)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
			assert.Equal(t, 0, m.SelectedIdx)

			// Bounds check (start of list)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
			assert.Equal(t, 0, m.SelectedIdx)
		})

		t.Run("Quit Commands", func(t *testing.T) {
			m := initModel(t)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			assert.Equal(t, tea.Quit(), cmd(), "q should return tea.Quit")

			_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			assert.Equal(t, tea.Quit(), cmd(), "ctrl+c should return tea.Quit")
		})

		t.Run("Follow Mode (Esc)", func(t *testing.T) {
			m := initModel(t)

			// Start check 2 to have a running manifest
			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest2, SpanID: spanID1})

			// Move selection away manually
			m.SelectedIdx = 0
			m.FollowMode = false

			// Press Esc
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEsc})

			assert.True(t, m.FollowMode, "Esc should enable FollowMode")
			assert.Equal(t, 1, m.SelectedIdx, "Esc should jump to running manifest (index 1)")
		})
	})

	t.Run("Telemetry Integration", func(t *testing.T) {
		t.Run("MsgInitManifests", func(t *testing.T) {
			m := tui.NewModel()
			msg := telemetry.MsgInitManifests{Manifests: []string{"a.txt", "b.txt"}}
			updatedModel, _ := m.Update(msg)
			m = updatedModel.(*tui.Model)

			assert.Len(t, m.Manifests, 2)
			assert.Len(t, m.ManifestMap, 2)
			assert.Equal(t, "a.txt", m.Manifests[0].Name)
			assert.Equal(t, tui.StatusPending, m.Manifests[0].Status)
		})

		t.Run("ReInitResetsBoard", func(t *testing.T) {
			m := initModel(t)
			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1})
			m, _ = updateModel(m, telemetry.MsgCheckLog{SpanID: spanID1, Data: []byte("finding\n")})
			m, _ = updateModel(m, telemetry.MsgCheckComplete{SpanID: spanID1, Err: zerr.New("fail")})

			// Watch mode re-checks with a fresh plan.
			m, _ = updateModel(m, telemetry.MsgInitManifests{Manifests: []string{manifest1}})

			require.Len(t, m.Manifests, 1)
			assert.Equal(t, tui.StatusPending, m.Manifests[0].Status)
			assert.Empty(t, m.Manifests[0].Findings)
			assert.Empty(t, m.SpanMap)
		})

		t.Run("MsgCheckStart", func(t *testing.T) {
			m := initModel(t)

			msg := telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1}
			updatedModel, _ := m.Update(msg)
			m = updatedModel.(*tui.Model)

			requireStatus(t, m, manifest1, tui.StatusRunning)
			assert.Equal(t, m.Manifests[0], m.SpanMap[spanID1], "SpanMap should map spanID")

			// FollowMode moves selection to the active check.
			m.FollowMode = true
			msg2 := telemetry.MsgCheckStart{Name: manifest3, SpanID: spanID2}
			updatedModel, _ = m.Update(msg2)
			m = updatedModel.(*tui.Model)

			assert.Equal(t, 2, m.SelectedIdx, "FollowMode should switch selection to new check")
		})

		t.Run("MsgCheckLog", func(t *testing.T) {
			m := initModel(t)
			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1})

			m, _ = updateModel(m, telemetry.MsgCheckLog{
				SpanID: spanID1,
				Data:   []byte("requirements.txt:3: expected operator (syntax)\n"),
			})

			row := m.SpanMap[spanID1]
			require.Len(t, row.Findings, 1)
			assert.Contains(t, row.Findings[0], "expected operator")
		})

		t.Run("MsgCheckLogPartialLines", func(t *testing.T) {
			m := initModel(t)
			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1})

			m, _ = updateModel(m, telemetry.MsgCheckLog{SpanID: spanID1, Data: []byte("first ha")})
			row := m.SpanMap[spanID1]
			assert.Empty(t, row.Findings, "partial line should stay buffered")

			m, _ = updateModel(m, telemetry.MsgCheckLog{SpanID: spanID1, Data: []byte("lf\nsecond\n")})
			require.Len(t, row.Findings, 2)
			assert.Equal(t, "first half", row.Findings[0])
			assert.Equal(t, "second", row.Findings[1])
		})

		t.Run("MsgCheckComplete", func(t *testing.T) {
			m := initModel(t)
			start := time.Now()

			// Clean pass
			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1, StartTime: start})
			m, _ = updateModel(m, telemetry.MsgCheckComplete{SpanID: spanID1, EndTime: start.Add(time.Second)})
			requireStatus(t, m, manifest1, tui.StatusPassed)
			assert.Equal(t, time.Second, m.ManifestMap[manifest1].Duration)

			// Failure
			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest2, SpanID: spanID2})
			m, _ = updateModel(m, telemetry.MsgCheckComplete{SpanID: spanID2, Err: zerr.New("fail")})
			requireStatus(t, m, manifest2, tui.StatusFailed)
		})

		t.Run("MsgCheckCompleteWithFindings", func(t *testing.T) {
			m := initModel(t)

			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1})
			m, _ = updateModel(m, telemetry.MsgCheckLog{SpanID: spanID1, Data: []byte("a warning\n")})
			m, _ = updateModel(m, telemetry.MsgCheckComplete{SpanID: spanID1, Err: nil})

			// Findings without an error mean warnings only.
			requireStatus(t, m, manifest1, tui.StatusWarned)
		})

		t.Run("MsgCheckCompleteFlushesPartialLine", func(t *testing.T) {
			m := initModel(t)

			m, _ = updateModel(m, telemetry.MsgCheckStart{Name: manifest1, SpanID: spanID1})
			m, _ = updateModel(m, telemetry.MsgCheckLog{SpanID: spanID1, Data: []byte("no newline")})
			m, _ = updateModel(m, telemetry.MsgCheckComplete{SpanID: spanID1, Err: nil})

			row := m.ManifestMap[manifest1]
			require.Len(t, row.Findings, 1)
			assert.Equal(t, "no newline", row.Findings[0])
		})
	})
}

// Helpers.

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}

func requireStatus(t *testing.T, m *tui.Model, manifest string, expected tui.CheckStatus) {
	t.Helper()
	row, ok := m.ManifestMap[manifest]
	require.True(t, ok, "Manifest %s should exist in ManifestMap", manifest)
	assert.Equal(t, expected, row.Status, "Manifest status should match")
}

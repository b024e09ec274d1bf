package internal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, t tea.KeyType) {
	m.Update(tea.KeyMsg{Type: t})
}

func TestModelStartAndStop(t *testing.T) {
	m := NewModel("t")

	typeString(m, "solve")
	require.Equal(t, "solve", m.LabelInput)

	press(m, tea.KeyEnter)
	require.True(t, m.Session.Running())
	require.NoError(t, m.Err)

	press(m, tea.KeyEnter)
	require.False(t, m.Session.Running())
	require.NoError(t, m.Err)
	require.Empty(t, m.LabelInput)

	measurements := m.Session.Measurements()
	require.Len(t, measurements, 1)
	require.Equal(t, "solve", measurements[0].Label)
}

func TestModelTypingLockedWhileRunning(t *testing.T) {
	m := NewModel("t")

	typeString(m, "load")
	press(m, tea.KeyEnter)
	typeString(m, "extra")
	require.Equal(t, "load", m.LabelInput)
}

func TestModelBackspace(t *testing.T) {
	m := NewModel("t")

	typeString(m, "ab")
	press(m, tea.KeyBackspace)
	require.Equal(t, "a", m.LabelInput)

	// Backspace on an empty input is a no-op.
	press(m, tea.KeyBackspace)
	press(m, tea.KeyBackspace)
	require.Empty(t, m.LabelInput)
}

func TestModelClear(t *testing.T) {
	m := NewModel("t")

	typeString(m, "x")
	press(m, tea.KeyEnter)
	press(m, tea.KeyEnter)
	require.Len(t, m.Session.Measurements(), 1)

	press(m, tea.KeyCtrlR)
	require.Empty(t, m.Session.Measurements())
	require.False(t, m.Session.Running())
	require.Empty(t, m.LabelInput)
}

func TestModelReportToggle(t *testing.T) {
	m := NewModel("t")

	press(m, tea.KeyEsc)
	require.True(t, m.ShowReport)

	press(m, tea.KeyEsc)
	require.False(t, m.ShowReport)

	// Enter closes the report instead of starting a measurement.
	press(m, tea.KeyEsc)
	press(m, tea.KeyEnter)
	require.False(t, m.ShowReport)
	require.False(t, m.Session.Running())
}

func TestModelQuit(t *testing.T) {
	m := NewModel("t")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

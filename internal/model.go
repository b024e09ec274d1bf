package internal

import (
	"bench_tui/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type MsgTick struct{}

type Model struct {
	Session    *session.Session
	LabelInput string
	ShowReport bool
	Err        error
}

func NewModel(title string) *Model {
	return &Model{
		Session: session.New(title),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		// Redraw so the live elapsed display moves.
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowReport {
		return m.reportView()
	}
	return m.mainView()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowReport {
		return m.handleReportInput(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.Session.Running() {
			_, err := m.Session.End()
			m.Err = err
			m.LabelInput = ""
		} else {
			m.Err = m.Session.Start(m.LabelInput)
		}
	case "esc":
		m.ShowReport = true
	case "ctrl+r":
		m.Session.Clear()
		m.LabelInput = ""
		m.Err = nil
	case "backspace":
		if len(m.LabelInput) > 0 {
			m.LabelInput = m.LabelInput[:len(m.LabelInput)-1]
		}
	default:
		if m.Session.Running() {
			// The label is fixed once the measurement starts.
			break
		}
		runes := []rune(msg.String())
		if len(runes) == 1 {
			m.LabelInput += string(runes[0])
		}
	}
	return m, nil
}

func (m *Model) handleReportInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "enter":
		m.ShowReport = false
	}
	return m, nil
}

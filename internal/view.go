package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.5f ms", float64(d)/float64(time.Millisecond))
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(80).Render(m.Session.Title()))
	sb.WriteString("\n\n")

	if m.Session.Running() {
		sb.WriteString(fmt.Sprintf("  Timing %s\n", labelStyle.Render(m.LabelInput)))
		sb.WriteString(fmt.Sprintf("  %s %s\n\n",
			runningStyle.Render("Running"),
			runningStyle.Render(formatMillis(m.Session.Elapsed())),
		))
	} else {
		sb.WriteString(fmt.Sprintf("  Label: %s\n", inputStyle.Render(m.LabelInput+"█")))
		sb.WriteString(fmt.Sprintf("  %s\n\n", inactiveStyle.Render("Idle")))
	}

	if m.Err != nil {
		sb.WriteString(fmt.Sprintf("  %s\n\n", errStyle.Render(m.Err.Error())))
	}

	sb.WriteString(m.measurementListView())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Enter: Start/Stop | Esc: Report | Ctrl+R: Clear | Ctrl+C: Quit"))

	return sb.String()
}

func (m *Model) measurementListView() string {
	measurements := m.Session.Measurements()
	if len(measurements) == 0 {
		return boxStyle.Width(50).Render(inactiveStyle.Render("No measurements yet. Type a label and press Enter."))
	}

	var sb strings.Builder
	for i, meas := range measurements {
		label := meas.Label
		if label == "" {
			label = inactiveStyle.Render("(unlabeled)")
		} else {
			label = labelStyle.Render(label)
		}
		sb.WriteString(fmt.Sprintf("%2d. %s  %.5f ms", i+1, label, meas.DurationMS))
		if i < len(measurements)-1 {
			sb.WriteString("\n")
		}
	}
	return boxStyle.Width(50).Render(sb.String())
}

func (m *Model) reportView() string {
	var sb strings.Builder
	sb.WriteString(m.Session.Render())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Esc: Back | Ctrl+C: Quit"))
	return sb.String()
}

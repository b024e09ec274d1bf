package session

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ruleToken is the en dash used for horizontal rules and label separators.
const ruleToken = "–"

var (
	frameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E3E17F")).
			Bold(true)

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8FE37D")).
			Bold(true)
)

func fence(n int, token string) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(token, n)
}

// formatMS renders a millisecond duration with exactly 5 decimal places.
func formatMS(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 5, 64)
}

// digitsBeforeDecimal returns the count of characters before the decimal
// point, e.g. "123.45600" -> 3, or the whole length if there is no point.
func digitsBeforeDecimal(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return i
	}
	return len(s)
}

// Render produces the formatted report of all completed measurements. It has
// no side effects and is safe to call in any state; a measurement that has
// not ended yet is simply absent.
func (s *Session) Render() string {
	width := s.maxLabelLen + s.maxDurLen
	if n := len(s.title); n > width {
		width = n
	}
	width += 13
	lead := width/2 - len(s.title)/2

	rule := frameStyle.Render(fence(width, ruleToken))

	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteByte('\n')
	sb.WriteString(frameStyle.Render(fence(lead, " ") + s.title))
	sb.WriteByte('\n')
	sb.WriteString(rule)
	sb.WriteByte('\n')

	for _, m := range s.completed {
		d := formatMS(m.DurationMS)

		sb.WriteString(frameStyle.Render("|| "))
		sb.WriteString(entryStyle.Render(m.Label))
		sb.WriteString(fence(s.maxLabelLen-len(m.Label)+2, ruleToken))
		sb.WriteString(": ")
		sb.WriteString(entryStyle.Render(fence(s.maxIntDigits-digitsBeforeDecimal(d), " ") + d))
		sb.WriteString(" ms")
		sb.WriteString(frameStyle.Render(" ||"))
		sb.WriteByte('\n')
	}

	sb.WriteString(rule)
	sb.WriteByte('\n')
	return sb.String()
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/TAnomaly/Fintech-TUI/internal/dashboard"
)

var promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// View derives the frame from the session. Nothing here mutates state;
// the view model is rebuilt from scratch every frame and discarded.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := dashboard.TitleBar(m.session.Symbol, m.width)

	var body string
	if len(m.session.Series) == 0 {
		body = dashboard.WarningPanel(m.session.Symbol, m.width)
	} else {
		summary := dashboard.SummaryPanel(m.session.Series, m.width)
		chartH := m.height - lipgloss.Height(title) - lipgloss.Height(summary) - 4
		if chartH < 4 {
			chartH = 4
		}
		chart := dashboard.ChartPanel(m.session.Series, m.width, chartH)
		body = lipgloss.JoinVertical(lipgloss.Left, summary, chart)
	}

	bottom := m.bottomLine()

	return lipgloss.JoinVertical(lipgloss.Left, title, body, bottom)
}

// bottomLine renders the info strip, the symbol prompt, or the in-flight
// marker, whichever applies.
func (m Model) bottomLine() string {
	if m.mode == modePrompt {
		return promptStyle.Render(" new symbol: ") + m.input.View()
	}

	info := dashboard.InfoLine(m.session.Series, m.maWindow, m.session.LastError, m.width)
	if m.fetching {
		return lipgloss.JoinVertical(lipgloss.Left, info,
			m.spin.View()+" fetching "+m.pending+"...")
	}
	return info
}

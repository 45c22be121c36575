// Package dashboard renders the price dashboard: title bar, summary
// table, line chart, and info strip. Everything here is a stateless
// function of the data passed in; session state never lives in this
// package.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TAnomaly/Fintech-TUI/internal/series"
)

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6"))
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle      = lipgloss.NewStyle().Bold(true)
	upStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	downStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	chartLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TitleBar renders the top bar with the current symbol and key hints.
func TitleBar(symbol string, width int) string {
	text := fmt.Sprintf(" %s  daily closes    enter change symbol  q quit ", symbol)
	return titleStyle.Render(PadOrTrunc(text, width))
}

// SummaryPanel renders the latest close with day-over-day change and the
// high/low of the displayed window.
func SummaryPanel(s series.PriceSeries, width int) string {
	last, _ := s.Latest()
	prices := s.Prices()
	yMin, yMax := series.Bounds(prices)

	change := ""
	if len(prices) >= 2 {
		c := FormatChange(prices[len(prices)-2], last.Price)
		if last.Price >= prices[len(prices)-2] {
			change = upStyle.Render(c)
		} else {
			change = downStyle.Render(c)
		}
	}

	lines := []string{
		labelStyle.Render("latest close  ") + FormatPrice(last.Price) + "  " + change,
		labelStyle.Render("date          ") + last.Date,
		labelStyle.Render("window        ") + fmt.Sprintf("%d days   high %s   low %s",
			len(prices), FormatPrice(yMax), FormatPrice(yMin)),
	}
	return renderPanel("summary", strings.Join(lines, "\n"), width)
}

// ChartPanel renders the closing-price line chart inside a bordered panel.
func ChartPanel(s series.PriceSeries, width, height int) string {
	prices := s.Prices()
	innerW := width - 2
	innerH := height - 3 // border rows plus the in-panel title line
	chart := Chart(prices, innerW, innerH)
	if chart == "" {
		chart = dimStyle.Render("terminal too small for chart")
	} else {
		chart = chartLineStyle.Render(chart)
	}
	title := fmt.Sprintf("closing prices, last %d days", len(prices))
	return renderPanel(title, chart, width)
}

// WarningPanel replaces the table and chart when no series is available.
func WarningPanel(symbol string, width int) string {
	msg := warnStyle.Render(fmt.Sprintf("no data available for %s", symbol))
	return renderPanel("warning", msg, width)
}

// InfoLine composes the moving-average text with the current error text.
// An empty series yields no moving-average text at all; a series shorter
// than the window yields the insufficient-data message.
func InfoLine(s series.PriceSeries, maWindow int, errText string, width int) string {
	var parts []string
	if len(s) > 0 {
		if avg, ok := series.MovingAverage(s.Prices(), maWindow); ok {
			parts = append(parts, fmt.Sprintf("%d-day moving average: %s", maWindow, FormatPrice(avg)))
		} else {
			parts = append(parts, fmt.Sprintf("not enough data for the %d-day moving average", maWindow))
		}
	}
	if errText != "" {
		parts = append(parts, errStyle.Render("error: "+errText))
	}
	return renderPanel("info", strings.Join(parts, "   "), width)
}

func renderPanel(title, content string, width int) string {
	innerW := width - 2
	if innerW < 1 {
		innerW = 1
	}
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(title))
	b.WriteByte('\n')
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return panelStyle.Width(innerW).Render(b.String())
}

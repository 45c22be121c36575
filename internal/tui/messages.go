package tui

import (
	"time"

	"github.com/TAnomaly/Fintech-TUI/internal/series"
)

// tickMsg fires on the redraw interval. The data itself never refreshes
// on a tick; the tick only keeps the frame loop alive.
type tickMsg time.Time

// fetchResultMsg carries the outcome of a background fetch back into the
// update loop, which stays the sole writer of the session.
type fetchResultMsg struct {
	symbol string
	series series.PriceSeries
	err    error
}

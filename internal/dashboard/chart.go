package dashboard

import (
	"fmt"
	"strings"

	"github.com/TAnomaly/Fintech-TUI/internal/series"
)

const labelWidth = 9 // "12345.00 "

// Chart plots prices as a line chart on a rune grid, oldest on the left.
// Vertical runs connect consecutive points so the line stays continuous.
// The returned string has exactly height lines of width characters,
// including the y-axis labels on the left edge.
func Chart(prices []float64, width, height int) string {
	plotW := width - labelWidth
	if plotW < 2 || height < 2 || len(prices) == 0 {
		return ""
	}

	yMin, yMax := series.Bounds(prices)
	span := yMax - yMin

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, plotW)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	// Row for a price, counted from the top of the grid.
	rowFor := func(v float64) int {
		r := height - 1 - int((v-yMin)/span*float64(height-1)+0.5)
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	prevRow := -1
	for c := 0; c < plotW; c++ {
		idx := 0
		if plotW > 1 {
			idx = c * (len(prices) - 1) / (plotW - 1)
		}
		row := rowFor(prices[idx])
		grid[row][c] = '•'
		if prevRow >= 0 && absInt(row-prevRow) > 1 {
			lo, hi := prevRow, row
			if lo > hi {
				lo, hi = hi, lo
			}
			for r := lo + 1; r < hi; r++ {
				grid[r][c] = '│'
			}
		}
		prevRow = row
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		switch r {
		case 0:
			fmt.Fprintf(&b, "%8.2f ", yMax)
		case height - 1:
			fmt.Fprintf(&b, "%8.2f ", yMin)
		case (height - 1) / 2:
			fmt.Fprintf(&b, "%8.2f ", (yMin+yMax)/2)
		default:
			b.WriteString(strings.Repeat(" ", labelWidth))
		}
		b.WriteString(string(grid[r]))
		if r < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

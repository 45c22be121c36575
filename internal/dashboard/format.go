package dashboard

import (
	"fmt"
	"strings"
)

// FormatPrice formats a closing price with two decimals.
func FormatPrice(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

// FormatChange formats a day-over-day move as a signed absolute value
// plus percentage, e.g. "+1.25 (+0.82%)". Base is the previous close.
func FormatChange(prev, last float64) string {
	diff := last - prev
	if prev == 0 {
		return fmt.Sprintf("%+.2f", diff)
	}
	return fmt.Sprintf("%+.2f (%+.2f%%)", diff, diff/prev*100)
}

// PadOrTrunc pads s with spaces to exactly width characters, truncating
// when it is too long.
func PadOrTrunc(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// Package series holds the in-memory daily closing-price series and the
// arithmetic derived from it: trailing moving averages and chart axis
// bounds.
package series

import "math"

// Close is a single daily closing price. Date is the provider's ISO date
// string (YYYY-MM-DD), kept for display and ordering only.
type Close struct {
	Date  string
	Price float64
}

// PriceSeries is an ordered run of daily closes, oldest first.
type PriceSeries []Close

// Prices returns the closing prices in chronological order.
func (s PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, c := range s {
		prices[i] = c.Price
	}
	return prices
}

// Latest returns the most recent close. ok is false for an empty series.
func (s PriceSeries) Latest() (Close, bool) {
	if len(s) == 0 {
		return Close{}, false
	}
	return s[len(s)-1], true
}

// MovingAverage computes the unweighted mean of the trailing window
// elements. ok is false when fewer than window prices are available; that
// is an expected condition, not an error.
func MovingAverage(prices []float64, window int) (avg float64, ok bool) {
	if window <= 0 || len(prices) < window {
		return 0, false
	}
	sum := 0.0
	for _, p := range prices[len(prices)-window:] {
		sum += p
	}
	return sum / float64(window), true
}

// Bounds returns y-axis bounds enclosing all prices: floor of the minimum
// and ceil of the maximum. A flat series widens to ±1 so the axis never
// collapses to zero height. Callers must not pass an empty slice.
func Bounds(prices []float64) (yMin, yMax float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	if max-min < 1e-9 {
		return min - 1, max + 1
	}
	return math.Floor(min), math.Ceil(max)
}

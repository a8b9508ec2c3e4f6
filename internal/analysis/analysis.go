// Package analysis provides the small derived metrics shown next to gigs and earnings.
package analysis

import (
	"fmt"
	"strconv"
)

// ClickRate returns views/impressions, or 0 when there were no impressions.
func ClickRate(views, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(views) / float64(impressions)
}

// Percent formats a ratio the way the gig cards do: one decimal and a percent sign.
func Percent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%"
}

// Dollars formats an amount as an axis or tooltip label, e.g. "$2400".
func Dollars(amount int) string {
	return fmt.Sprintf("$%d", amount)
}

// Sum adds up a series of amounts.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Bounds returns the min and max of values; both are 0 for an empty slice.
func Bounds(values []int) (lo, hi int) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

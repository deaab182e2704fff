// Package format renders economy numbers the way the game UI shows them:
// short suffixed amounts for currency, grouped digits for plain counts.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Amount renders a currency value with K/M/B/T suffixes and one decimal.
// Values under a thousand keep a decimal of precision for visual feedback
// on slow trickles.
func Amount(n float64) string {
	if math.IsNaN(n) || n == 0 {
		return "0"
	}
	neg := ""
	if n < 0 {
		neg = "-"
		n = -n
	}
	switch {
	case n < 1:
		return neg + humanize.Ftoa(math.Floor(n*100)/100)
	case n < 1000:
		return neg + humanize.Ftoa(math.Floor(n*10)/10)
	case n < 1e6:
		return fmt.Sprintf("%s%.1fK", neg, n/1e3)
	case n < 1e9:
		return fmt.Sprintf("%s%.1fM", neg, n/1e6)
	case n < 1e12:
		return fmt.Sprintf("%s%.1fB", neg, n/1e9)
	default:
		return fmt.Sprintf("%s%.1fT", neg, n/1e12)
	}
}

// Rate renders a per-second production figure.
func Rate(n float64) string {
	return Amount(n) + "/s"
}

// Count renders an integer with digit grouping (1,234,567).
func Count(n int64) string {
	return humanize.Comma(n)
}

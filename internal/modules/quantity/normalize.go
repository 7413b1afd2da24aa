package quantity

import (
	"math"
	"strconv"
	"strings"
)

// maxQty keeps absurd input ("9e99") from overflowing int conversion.
const maxQty = math.MaxInt32

// Normalize converts raw input text into a usable quantity.
// Empty, non-numeric, negative or otherwise unparseable text becomes 1;
// fractional values are floored. Trailing garbage ("20e") is a failed
// parse, not a numeric prefix.
func Normalize(text string) int {
	s := strings.TrimSpace(text)
	if s == "" {
		return 1
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	if v < 1 {
		return 1
	}
	if v > maxQty {
		return maxQty
	}
	return int(math.Floor(v))
}

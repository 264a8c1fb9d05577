package validation

import (
	"math"
	"strconv"
	"strings"
)

// ParseEmojiVersion parses an emoji version number. NaN and infinities are
// rejected along with anything ParseFloat refuses.
func ParseEmojiVersion(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

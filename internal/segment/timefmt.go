package segment

import (
	"fmt"
	"math"
)

// FormatTimestamp renders seconds as the SRT time format HH:MM:SS,mmm.
// NaN, infinite, and negative inputs yield the fixed string "00:00:00,000"
// rather than an error; subtitle rendering never fails on a bad timestamp.
func FormatTimestamp(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00:00,000"
	}
	whole := int(seconds)
	millis := int((seconds - float64(whole)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", whole/3600, (whole/60)%60, whole%60, millis)
}

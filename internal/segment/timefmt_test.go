package segment

import (
	"math"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00,000"},
		{"hours minutes seconds millis", 3661.123, "01:01:01,123"},
		{"sub-second", 0.5, "00:00:00,500"},
		{"exact minute", 60, "00:01:00,000"},
		{"long recording", 7322.5, "02:02:02,500"},
		{"nan", math.NaN(), "00:00:00,000"},
		{"positive infinity", math.Inf(1), "00:00:00,000"},
		{"negative infinity", math.Inf(-1), "00:00:00,000"},
		{"negative", -5.2, "00:00:00,000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTimestamp(tc.seconds); got != tc.want {
				t.Fatalf("FormatTimestamp(%v) = %q, expected %q", tc.seconds, got, tc.want)
			}
		})
	}
}

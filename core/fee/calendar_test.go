package fee

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRemainingMonthFraction(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{name: "first day counts whole month", t: date(2025, time.September, 1), want: 1.0},
		{name: "mid month", t: date(2025, time.September, 15), want: 16.0 / 30.0},
		{name: "last day of 30-day month", t: date(2025, time.September, 30), want: 1.0 / 30.0},
		{name: "last day of 31-day month", t: date(2025, time.October, 31), want: 1.0 / 31.0},
		{name: "february", t: date(2026, time.February, 28), want: 1.0 / 28.0},
		{name: "february leap year", t: date(2028, time.February, 29), want: 1.0 / 29.0},
		{name: "mid february leap year", t: date(2028, time.February, 14), want: 16.0 / 29.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingMonthFraction(tt.t)
			if !almostEqual(got, tt.want) {
				t.Errorf("RemainingMonthFraction() = %v, want %v", got, tt.want)
			}
			if got <= 0 || got > 1 {
				t.Errorf("RemainingMonthFraction() = %v, want in (0, 1]", got)
			}
		})
	}
}

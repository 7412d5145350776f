package fee

import "time"

// RemainingMonthFraction returns the fraction of t's calendar month remaining
// until month end, inclusive of t's day. Always in (0, 1]: 1.0 on the 1st,
// 1/daysInMonth on the last day.
func RemainingMonthFraction(t time.Time) float64 {
	total := daysInMonth(t.Year(), t.Month())
	remaining := total - t.Day() + 1
	return float64(remaining) / float64(total)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package fee

import "time"

// AccrueTuition computes the tuition owed between start and end at the given
// monthly fee: pro-rata for the partial start month, full price for every
// whole calendar month in between, and pro-rata for the end month.
//
// The end-month share deliberately reuses the "remaining days" fraction on
// the end date itself (the fraction of the end month from the end date to
// month end, not up to it). Billing relies on this behavior; do not "fix" it
// without a product decision.
//
// No currency rounding is applied here; rounding belongs to the presentation
// layer.
func AccrueTuition(start, end time.Time, monthlyFee float64) float64 {
	// already past the program end - nothing owed
	if !start.Before(end) {
		return 0
	}

	total := RemainingMonthFraction(start) * monthlyFee

	// whole months strictly between start's month and end's month
	nextMonth := int(start.Month())%12 + 1
	nextMonthYear := start.Year()
	if nextMonth == 1 {
		nextMonthYear++
	}
	fullMonths := (end.Year()-nextMonthYear)*12 + int(end.Month()) - nextMonth
	total += float64(fullMonths) * monthlyFee

	total += RemainingMonthFraction(end) * monthlyFee
	return total
}

package ledger

import "time"

// MonthRange returns the UTC bounds of a calendar month. The end bound
// is the first instant of the following month, so queries filter with
// date >= start AND date < end; that covers the month through the last
// instant of its last day without timezone drift between the bounds.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0)
}

// FirstOfMonth returns the budget natural-key form of a month.
func FirstOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

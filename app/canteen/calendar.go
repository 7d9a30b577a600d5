package canteen

import "time"

// DateOnly truncates t to midnight UTC. Records are keyed by day, so
// every date passing through the core goes through this first.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a day-granular time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, newValidationError("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOnly(t), nil
}

// CountWeekdays counts the Monday-Friday days in [start, end] inclusive.
// Weekends never qualify for canteen service, so they stay out of the
// prepayment divisor.
func CountWeekdays(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

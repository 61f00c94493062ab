// Package dates provides calendar arithmetic for scheduling.
//
// time.AddDate normalizes overflowing days (Jan 31 + 1 month = Mar 3), which
// is wrong for installment due dates. AddMonths clamps to the last day of the
// target month instead.
package dates

import "time"

// AddMonths adds n calendar months to d, clamping the day of month to the
// last day of the target month when d's day does not exist there.
func AddMonths(d time.Time, n int) time.Time {
	year, month, day := d.Date()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 {
		// Go's integer division truncates toward zero; shift into range.
		targetYear = year + (totalMonths-11)/12
		targetMonth = time.Month((totalMonths%12+12)%12 + 1)
	}

	if last := DaysIn(targetYear, targetMonth); day > last {
		day = last
	}

	h, m, s := d.Clock()
	return time.Date(targetYear, targetMonth, day, h, m, s, d.Nanosecond(), d.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today returns the current UTC date truncated to midnight. Due-date
// comparisons work on whole days.
func Today() time.Time {
	return Truncate(time.Now().UTC())
}

// Truncate drops the time-of-day component of t, keeping its location.
func Truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

package repository

import "time"

// firstOfMonth returns midnight UTC on the first day of the given month.
func firstOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

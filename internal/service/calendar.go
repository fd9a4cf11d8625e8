package service

import "time"

const dateLayout = "2006-01-02"

// mondayIndex maps a date to the schedule weekday convention, 0=Monday..6=Sunday.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// normalizeWeekStart aligns a date to the Monday of its week. A Sunday is
// treated as day 0 of the following week, so it advances one day before
// aligning; any other day rolls back to its own Monday.
func normalizeWeekStart(d time.Time) time.Time {
	if d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, -mondayIndex(d))
}

// parseDate parses a YYYY-MM-DD value into a UTC date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// dateOnly strips any clock component, keeping the UTC date. Values read back
// from a DATE column may carry a zone; comparing by formatted date keeps the
// diff keys stable.
func dateOnly(t time.Time) string {
	return t.Format(dateLayout)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

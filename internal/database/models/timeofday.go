package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimeOfDay is a wall-clock time in zero-padded "HH:MM" form. Zero padding
// keeps lexicographic order identical to temporal order, so the interval
// algebra in the coverage engine can compare values directly.
type TimeOfDay string

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(fmt.Sprintf("%02d:%02d", hour, minute))
}

// Valid reports whether the value is a well-formed HH:MM clock time.
func (t TimeOfDay) Valid() bool {
	return timeOfDayRe.MatchString(string(t))
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// Minutes returns the offset from midnight in minutes. Invalid values map to 0.
func (t TimeOfDay) Minutes() int {
	if !t.Valid() {
		return 0
	}
	h, _ := strconv.Atoi(string(t)[:2])
	m, _ := strconv.Atoi(string(t)[3:])
	return h*60 + m
}

// HoursUntil returns the span from t to end in fractional hours.
func (t TimeOfDay) HoursUntil(end TimeOfDay) float64 {
	return float64(end.Minutes()-t.Minutes()) / 60.0
}

// Overlaps reports whether the half-open intervals [t, tEnd) and [s, sEnd)
// intersect.
func Overlaps(t, tEnd, s, sEnd TimeOfDay) bool {
	return t < sEnd && tEnd > s
}

// Contains reports whether [t, tEnd) fully contains [s, sEnd).
func Contains(t, tEnd, s, sEnd TimeOfDay) bool {
	return t <= s && tEnd >= sEnd
}

package policy

import (
	"math"
	"time"
)

// Attendance status labels derived at sign-out.
const (
	StatusPresent = "PRESENT"
	StatusHalfDay = "HALF_DAY"
	StatusAbsent  = "ABSENT"
)

// Working-hours thresholds. Lower bound of each band is inclusive.
const (
	PresentMinHours = 8.0
	HalfDayMinHours = 4.0
)

// WorkingHours converts a sign-in/sign-out span into hours, rounded to
// two decimal places.
func WorkingHours(signIn, signOut time.Time) float64 {
	hours := signOut.Sub(signIn).Seconds() / 3600
	return math.Round(hours*100) / 100
}

// ClassifyStatus maps derived working hours onto an attendance status.
// This is the single source of truth used at sign-out.
func ClassifyStatus(hours float64) string {
	switch {
	case hours >= PresentMinHours:
		return StatusPresent
	case hours >= HalfDayMinHours:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// InclusiveDayCount returns the number of calendar days spanned by
// [start, end], counting both endpoints. A single-day range counts as 1.
func InclusiveDayCount(start, end time.Time) int {
	startDay := start.Truncate(24 * time.Hour)
	endDay := end.Truncate(24 * time.Hour)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// RangesOverlap reports whether the closed intervals [s1, e1] and [s2, e2]
// intersect. Boundary-touching ranges overlap.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

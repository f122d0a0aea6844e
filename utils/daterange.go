package utils

import "time"

// BeginningOfDay truncates t to midnight in its own location.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Overlaps reports whether two half-open day intervals [start1,end1) and
// [start2,end2) intersect. Adjacent ranges do not overlap: the checkout day
// is free for a new check-in.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	s1, e1 := BeginningOfDay(start1), BeginningOfDay(end1)
	s2, e2 := BeginningOfDay(start2), BeginningOfDay(end2)
	return s1.Before(e2) && e1.After(s2)
}

// DaysBetween returns whole days from start to end, day-truncated.
func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// Nights returns the number of nights of a stay, at least 0.
func Nights(checkIn, checkOut time.Time) int {
	n := DaysBetween(checkIn, checkOut)
	if n < 0 {
		return 0
	}
	return n
}

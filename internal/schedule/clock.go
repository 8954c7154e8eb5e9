package schedule

import "time"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day. It is
// derived from the next day's midnight rather than a fixed 24h offset so DST
// transitions cannot push it into the following day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, 1)).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

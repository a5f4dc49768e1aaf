package progress

import "time"

// Clock abstracts wall-clock time so streak logic is testable at
// calendar-day granularity.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// dateOf truncates t to its calendar day in t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween returns the number of calendar days from a to b, ignoring
// time of day. Positive when b is after a. Both dates are re-anchored at
// UTC midnight so DST transitions (23- or 25-hour local days) cannot
// skew the count.
func daysBetween(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

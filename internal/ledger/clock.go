package ledger

import "time"

// Clock supplies the current time for date stamping and budget periods.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t. Useful in tests.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// today truncates now to a calendar date in UTC so the persisted date matches the local day.
func today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

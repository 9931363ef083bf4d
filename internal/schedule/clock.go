// Package schedule evaluates daily HH:MM on-windows, including windows that
// wrap past midnight.
package schedule

import (
	"fmt"
	"time"
)

// Clock is a time of day with minute granularity, stored as minutes after midnight.
type Clock int

const minutesPerDay = 24 * 60

// ParseClock accepts a zero-padded 24-hour "HH:MM" string (00:00 through 23:59).
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM (24-hour)", s)
	}
	return Clock(h*60 + m), nil
}

// ClockOf returns the time of day of t in t's location, truncated to the minute.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

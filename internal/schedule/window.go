package schedule

import (
	"fmt"
	"time"

	"hvac_hub/internal/models"
)

// Window is a half-open daily interval [Start, End).
type Window struct {
	Start Clock
	End   Clock
}

// Overnight reports whether the window wraps past midnight.
func (w Window) Overnight() bool { return w.Start > w.End }

// Contains reports whether c falls inside the window.
// Start == End is a same-day window of zero length and contains nothing.
func (w Window) Contains(c Clock) bool {
	if w.Overnight() {
		return c >= w.Start || c < w.End
	}
	return w.Start <= c && c < w.End
}

// Result is the outcome of evaluating a schedule.
// WithinWindow is nil when the schedule is disabled and therefore not authoritative.
type Result struct {
	Active       bool
	WithinWindow *bool
}

// WindowOf parses the schedule's start and end times.
func WindowOf(s models.ScheduleSettings) (Window, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return Window{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return Window{}, fmt.Errorf("end_time: %w", err)
	}
	return Window{Start: start, End: end}, nil
}

// IsActive decides whether the controlled unit should be on at now.
// now is interpreted in its own location; callers convert to the schedule's zone.
func IsActive(s models.ScheduleSettings, now time.Time) (Result, error) {
	if !s.Enabled {
		return Result{}, nil
	}
	w, err := WindowOf(s)
	if err != nil {
		return Result{}, err
	}
	in := w.Contains(ClockOf(now))
	return Result{Active: in, WithinWindow: &in}, nil
}

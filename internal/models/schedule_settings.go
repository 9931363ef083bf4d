package models

import "time"

// ScheduleSettings is the daily on-window. StartTime and EndTime are zero-padded
// 24-hour "HH:MM" strings; EndTime earlier than StartTime means the window crosses midnight.
type ScheduleSettings struct {
	Enabled   bool       `json:"enabled"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	UpdatedAt *time.Time `json:"timestamp"`
}

// SchedulePatch carries the schedule fields a web client wants to change.
type SchedulePatch struct {
	Enabled   *bool   `json:"enabled,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// ScheduleStatus answers "should the unit be on right now".
// ShouldBeOn is nil while the schedule is disabled.
type ScheduleStatus struct {
	ScheduleActive bool   `json:"schedule_active"`
	ShouldBeOn     *bool  `json:"should_be_on"`
	CurrentTime    string `json:"current_time"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Message        string `json:"message,omitempty"`
}

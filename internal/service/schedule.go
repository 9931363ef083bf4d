package service

import (
	"sync"
	"time"

	"hvac_hub/internal/models"
	"hvac_hub/internal/schedule"
)

const (
	defaultScheduleStart = "23:00"
	defaultScheduleEnd   = "05:00"
)

// ScheduleService holds the single schedule record and evaluates it
// against the wall clock in the configured location.
type ScheduleService struct {
	mu       sync.Mutex
	settings models.ScheduleSettings
	loc      *time.Location
	now      func() time.Time
}

var _ Schedule = (*ScheduleService)(nil)

// NewScheduleService starts disabled with a 23:00-05:00 window.
func NewScheduleService(loc *time.Location, now func() time.Time) *ScheduleService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{
		settings: models.ScheduleSettings{
			StartTime: defaultScheduleStart,
			EndTime:   defaultScheduleEnd,
		},
		loc: loc,
		now: now,
	}
}

func (s *ScheduleService) ScheduleSettings() models.ScheduleSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// UpdateSchedule applies the provided fields. Any invalid field rejects the
// whole request and the stored record is left untouched.
func (s *ScheduleService) UpdateSchedule(p models.SchedulePatch) (models.ScheduleSettings, error) {
	if p.StartTime != nil {
		if _, err := schedule.ParseClock(*p.StartTime); err != nil {
			return models.ScheduleSettings{}, models.NewValidationError("start_time", "Invalid start_time format. Use HH:MM (24-hour)")
		}
	}
	if p.EndTime != nil {
		if _, err := schedule.ParseClock(*p.EndTime); err != nil {
			return models.ScheduleSettings{}, models.NewValidationError("end_time", "Invalid end_time format. Use HH:MM (24-hour)")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Enabled != nil {
		s.settings.Enabled = *p.Enabled
	}
	if p.StartTime != nil {
		s.settings.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.settings.EndTime = *p.EndTime
	}
	ts := s.now()
	s.settings.UpdatedAt = &ts

	return s.snapshotLocked(), nil
}

// ScheduleStatus evaluates the schedule at the current time.
func (s *ScheduleService) ScheduleStatus() (models.ScheduleStatus, error) {
	cur := s.ScheduleSettings()
	now := s.now().In(s.loc)

	st := models.ScheduleStatus{
		CurrentTime: schedule.ClockOf(now).String(),
		StartTime:   cur.StartTime,
		EndTime:     cur.EndTime,
	}
	res, err := schedule.IsActive(cur, now)
	if err != nil {
		return st, err
	}
	st.ScheduleActive = cur.Enabled
	st.ShouldBeOn = res.WithinWindow
	if !cur.Enabled {
		st.Message = "Schedule is disabled"
	}
	return st, nil
}

func (s *ScheduleService) snapshotLocked() models.ScheduleSettings {
	out := s.settings
	if s.settings.UpdatedAt != nil {
		ts := *s.settings.UpdatedAt
		out.UpdatedAt = &ts
	}
	return out
}

package service

import (
	"sync"
	"time"

	"hvac_hub/internal/models"
)

// SettingsArbiter owns the shared HVAC settings record and the latest reading.
// Both writers (device reports and web commands) go through one mutex, so a
// reader always sees a fully merged record and the later writer's stamp wins.
//
// The arbiter only exposes provenance; it does not decide which side wins.
// A device polling HvacSettings must apply a record only when Origin is
// OriginWeb and UpdatedAt is after the last stamp it applied, which keeps it
// from re-applying its own echoed report as a command.
type SettingsArbiter struct {
	mu     sync.Mutex
	now    func() time.Time
	latest *models.Reading
	hvac   models.HvacSettings
}

var _ Hvac = (*SettingsArbiter)(nil)

// NewSettingsArbiter starts with no reading and all HVAC fields unset.
func NewSettingsArbiter(now func() time.Time) *SettingsArbiter {
	if now == nil {
		now = time.Now
	}
	return &SettingsArbiter{now: now}
}

// RecordReading replaces the latest reading. A non-nil snapshot is the device
// reporting its current state and is merged with OriginDevice, stamped with
// the reading's capture time. An invalid snapshot rejects the whole call.
func (a *SettingsArbiter) RecordReading(r models.Reading, snapshot *models.HvacPatch) error {
	if snapshot != nil {
		if err := snapshot.Validate(); err != nil {
			return err
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	rd := r
	a.latest = &rd
	if snapshot != nil {
		a.hvac = a.mergeLocked(*snapshot, models.OriginDevice, r.CapturedAt)
	}
	return nil
}

// ApplyWebCommand merges the provided fields with OriginWeb.
func (a *SettingsArbiter) ApplyWebCommand(p models.HvacPatch) (models.HvacSettings, error) {
	if err := p.Validate(); err != nil {
		return models.HvacSettings{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.hvac = a.mergeLocked(p, models.OriginWeb, time.Time{})
	return a.hvac.Clone(), nil
}

// HvacSettings returns a snapshot of the shared record.
func (a *SettingsArbiter) HvacSettings() models.HvacSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hvac.Clone()
}

// LatestReading returns the most recent reading, or false before the first one.
func (a *SettingsArbiter) LatestReading() (models.Reading, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.latest == nil {
		return models.Reading{}, false
	}
	return *a.latest, true
}

// mergeLocked requires a.mu.
func (a *SettingsArbiter) mergeLocked(p models.HvacPatch, origin models.Origin, at time.Time) models.HvacSettings {
	stamp := a.stampLocked(at)
	next := a.hvac.Merge(p)
	next.Origin = origin
	next.UpdatedAt = &stamp
	return next
}

// stampLocked keeps UpdatedAt strictly increasing even if the clock stalls or steps back.
func (a *SettingsArbiter) stampLocked(at time.Time) time.Time {
	if at.IsZero() {
		at = a.now()
	}
	if prev := a.hvac.UpdatedAt; prev != nil && !at.After(*prev) {
		at = prev.Add(time.Nanosecond)
	}
	return at
}

package service

import (
	"context"
	"time"

	"hvac_hub/internal/logger"
	"hvac_hub/internal/models"
	"hvac_hub/internal/repository"
)

// Ingestion accepts device reports and exposes the latest one.
type Ingestion interface {
	IngestReading(ctx context.Context, in ReadingInput) (time.Time, error)
	LatestReading() (models.Reading, bool)
}

// Hvac exposes the shared settings record and the web write path.
type Hvac interface {
	HvacSettings() models.HvacSettings
	ApplyWebCommand(p models.HvacPatch) (models.HvacSettings, error)
}

// Schedule exposes the daily on-window and its evaluation.
type Schedule interface {
	ScheduleSettings() models.ScheduleSettings
	UpdateSchedule(p models.SchedulePatch) (models.ScheduleSettings, error)
	ScheduleStatus() (models.ScheduleStatus, error)
}

// History exposes the most recent logged readings.
type History interface {
	Recent(ctx context.Context, limit int) []models.Reading
}

// Simulator runs a virtual device against the hub until ctx is canceled.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Ingestion
	Hvac
	Schedule
	History
	Simulator
}

// Options tunes clock and time zone. Zero values mean time.Now and time.Local.
type Options struct {
	Location *time.Location
	Now      func() time.Time
}

// NewService wires the repository layer into concrete services.
// The ingestion path and the web path share one SettingsArbiter.
func NewService(repos *repository.Repository, log *logger.Logger, opts Options) *Service {
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	arbiter := NewSettingsArbiter(now)
	ingest := NewIngestionService(arbiter, repos.Readings, repos.Mirrors, now, log)
	sched := NewScheduleService(loc, now)

	return &Service{
		Ingestion: ingest,
		Hvac:      arbiter,
		Schedule:  sched,
		History:   NewHistoryService(repos.Readings, log),
		Simulator: NewDeviceSimulator(ingest, arbiter, sched, log),
	}
}

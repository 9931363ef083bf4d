package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"hvac_hub/internal/logger"
	"hvac_hub/internal/models"
	"hvac_hub/internal/repository"
)

const mirrorTimeout = 5 * time.Second

// ReadingInput is one device report as decoded from the wire.
// Nil Temperature or Humidity means the field was absent or null.
type ReadingInput struct {
	Temperature *float64
	Humidity    *float64
	Hvac        *models.HvacPatch
}

// IngestionService validates device reports, updates the arbiter and logs them.
type IngestionService struct {
	arbiter  *SettingsArbiter
	readings repository.ReadingLog
	mirrors  []repository.ReadingSink
	now      func() time.Time
	log      *logger.Logger
}

func NewIngestionService(
	arbiter *SettingsArbiter,
	readings repository.ReadingLog,
	mirrors []repository.ReadingSink,
	now func() time.Time,
	log *logger.Logger,
) *IngestionService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &IngestionService{
		arbiter:  arbiter,
		readings: readings,
		mirrors:  mirrors,
		now:      now,
		log:      log,
	}
}

// IngestReading stores a report and returns its server-side capture time.
//
// A rejected report changes nothing. Once accepted, the latest reading and
// the device snapshot are updated before the log append; an append failure
// is returned but does not roll them back. Mirror failures are only logged.
func (s *IngestionService) IngestReading(ctx context.Context, in ReadingInput) (time.Time, error) {
	if err := in.validate(); err != nil {
		return time.Time{}, err
	}

	rd := models.Reading{
		Temperature: *in.Temperature,
		Humidity:    *in.Humidity,
		CapturedAt:  s.now(),
	}
	if err := s.arbiter.RecordReading(rd, in.Hvac); err != nil {
		return time.Time{}, err
	}

	if err := s.readings.Append(ctx, rd); err != nil {
		s.log.Errorw("reading_append_failed", "error", err)
		return time.Time{}, fmt.Errorf("ingest reading: %w", err)
	}
	s.mirror(ctx, rd)

	return rd.CapturedAt, nil
}

func (s *IngestionService) LatestReading() (models.Reading, bool) {
	return s.arbiter.LatestReading()
}

func (s *IngestionService) mirror(ctx context.Context, rd models.Reading) {
	for _, m := range s.mirrors {
		mctx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		if err := m.Append(mctx, rd); err != nil {
			s.log.Warnw("reading_mirror_failed", "error", err)
		}
		cancel()
	}
}

func (in ReadingInput) validate() error {
	const missing = "Missing temperature or humidity"
	if in.Temperature == nil {
		return models.NewValidationError("temperature", missing)
	}
	if in.Humidity == nil {
		return models.NewValidationError("humidity", missing)
	}
	if !finite(*in.Temperature) {
		return models.NewValidationError("temperature", "temperature must be a finite number")
	}
	if !finite(*in.Humidity) {
		return models.NewValidationError("humidity", "humidity must be a finite number")
	}
	if in.Hvac != nil {
		return in.Hvac.Validate()
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

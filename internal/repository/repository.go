package repository

import (
	"context"

	"hvac_hub/internal/models"
)

// ReadingLog is the append-only history of readings.
type ReadingLog interface {
	// Init prepares the store. It is idempotent and safe on every start.
	Init(ctx context.Context) error
	Append(ctx context.Context, r models.Reading) error
	// Recent returns at most limit readings, newest first.
	Recent(ctx context.Context, limit int) ([]models.Reading, error)
}

// ReadingSink receives a copy of every stored reading (e.g. a time-series mirror).
type ReadingSink interface {
	Append(ctx context.Context, r models.Reading) error
}

type Repository struct {
	Readings ReadingLog
	Mirrors  []ReadingSink
}

func NewRepository(readings ReadingLog, mirrors ...ReadingSink) *Repository {
	return &Repository{Readings: readings, Mirrors: mirrors}
}

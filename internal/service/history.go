package service

import (
	"context"

	"hvac_hub/internal/logger"
	"hvac_hub/internal/models"
	"hvac_hub/internal/repository"
)

// Limits for the history endpoint.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 50
)

// HistoryService reads the reading log for display.
type HistoryService struct {
	readings repository.ReadingLog
	log      *logger.Logger
}

func NewHistoryService(readings repository.ReadingLog, log *logger.Logger) *HistoryService {
	if log == nil {
		log = logger.Nop()
	}
	return &HistoryService{readings: readings, log: log}
}

// Recent returns up to limit readings, newest first. Out-of-range limits
// fall back to DefaultHistoryLimit. A failing log yields an empty result.
func (s *HistoryService) Recent(ctx context.Context, limit int) []models.Reading {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = DefaultHistoryLimit
	}
	out, err := s.readings.Recent(ctx, limit)
	if err != nil {
		s.log.Warnw("history_read_failed", "limit", limit, "error", err)
		return []models.Reading{}
	}
	if out == nil {
		out = []models.Reading{}
	}
	return out
}

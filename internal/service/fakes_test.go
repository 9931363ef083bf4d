package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"hvac_hub/internal/models"
)

// fakeClock returns t and advances it by step on each call.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

// readingLogStub is an in-memory repository.ReadingLog.
type readingLogStub struct {
	mu        sync.Mutex
	rows      []models.Reading
	appendErr error
	recentErr error
	lastLimit int
}

func (r *readingLogStub) Init(ctx context.Context) error { return nil }

func (r *readingLogStub) Append(ctx context.Context, rd models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.rows = append(r.rows, rd)
	return nil
}

func (r *readingLogStub) Recent(ctx context.Context, limit int) ([]models.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	out := make([]models.Reading, 0, limit)
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}

func (r *readingLogStub) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// sinkStub is a repository.ReadingSink that records or fails.
type sinkStub struct {
	got []models.Reading
	err error
}

func (s *sinkStub) Append(ctx context.Context, rd models.Reading) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, rd)
	return nil
}

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }

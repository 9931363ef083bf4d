package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"hvac_hub/internal/models"
	"hvac_hub/internal/repository/db"

	"github.com/google/uuid"
)

type ReadingSQLite struct {
	db *sql.DB
	mu sync.Mutex // appends never interleave
}

var _ ReadingLog = (*ReadingSQLite)(nil)

func NewReadingSQLite(conn *sql.DB) *ReadingSQLite { return &ReadingSQLite{db: conn} }

const (
	insertReadingSQL        = `INSERT INTO readings (id, captured_at, temperature, humidity) VALUES (?, ?, ?, ?)`
	selectRecentReadingsSQL = `SELECT captured_at, temperature, humidity FROM readings ORDER BY rowid DESC LIMIT ?`
)

// Init creates the readings table if it does not exist yet.
func (r *ReadingSQLite) Init(ctx context.Context) error {
	if err := db.EnsureSchema(ctx, r.db); err != nil {
		return &models.StorageError{Op: "init", Err: err}
	}
	return nil
}

// Append inserts one reading. Arrival order is the table's rowid order.
func (r *ReadingSQLite) Append(ctx context.Context, rd models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rd.CapturedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx, insertReadingSQL,
		uuid.NewString(),
		ts.UTC(),
		rd.Temperature,
		rd.Humidity,
	)
	if err != nil {
		return &models.StorageError{Op: "append", Err: err}
	}
	return nil
}

// Recent returns the last limit rows, newest first.
func (r *ReadingSQLite) Recent(ctx context.Context, limit int) ([]models.Reading, error) {
	if limit <= 0 {
		return []models.Reading{}, nil
	}
	rows, err := r.db.QueryContext(ctx, selectRecentReadingsSQL, limit)
	if err != nil {
		return nil, &models.StorageError{Op: "read", Err: err}
	}
	defer rows.Close()

	out := make([]models.Reading, 0, limit)
	for rows.Next() {
		var (
			rd models.Reading
			ts scannedTime
		)
		if err := rows.Scan(&ts, &rd.Temperature, &rd.Humidity); err != nil {
			return nil, &models.StorageError{Op: "read", Err: err}
		}
		rd.CapturedAt = ts.t.UTC()
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "read", Err: err}
	}
	return out, nil
}

// scannedTime accepts the TIMESTAMP column either as time.Time or as its text form.
type scannedTime struct{ t time.Time }

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

func (s *scannedTime) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		s.t = x
		return nil
	case string:
		return s.parse(x)
	case []byte:
		return s.parse(string(x))
	default:
		return fmt.Errorf("captured_at: unsupported type %T", v)
	}
}

func (s *scannedTime) parse(str string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			s.t = t
			return nil
		}
	}
	return fmt.Errorf("captured_at: invalid timestamp %q", str)
}

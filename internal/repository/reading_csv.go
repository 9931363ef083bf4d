package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"hvac_hub/internal/models"
)

// CSVTimeLayout is the timestamp format of the CSV log, in local time.
const CSVTimeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"Timestamp", "Temperature", "Humidity"}

// ReadingCSV stores readings as rows of a CSV file with a single header row.
type ReadingCSV struct {
	path string
	loc  *time.Location
	mu   sync.Mutex // serializes appends and tail reads
}

// Ensure implementation of ReadingLog interface at compile time.
var _ ReadingLog = (*ReadingCSV)(nil)

// NewReadingCSV returns a CSV log at path. Timestamps are written in loc (time.Local if nil).
func NewReadingCSV(path string, loc *time.Location) *ReadingCSV {
	if loc == nil {
		loc = time.Local
	}
	return &ReadingCSV{path: path, loc: loc}
}

// Init creates the file (and its directory) and writes the header if the file is empty.
func (r *ReadingCSV) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &models.StorageError{Op: "init", Err: err}
		}
	}
	f, err := os.OpenFile(r.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &models.StorageError{Op: "init", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := writeHeaderIfEmpty(f, w); err != nil {
		return &models.StorageError{Op: "init", Err: err}
	}
	return nil
}

// Append writes one row. A file removed after Init is recreated with its header.
func (r *ReadingCSV) Append(ctx context.Context, rd models.Reading) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &models.StorageError{Op: "append", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := writeHeaderIfEmpty(f, w); err != nil {
		return &models.StorageError{Op: "append", Err: err}
	}
	row := []string{
		rd.CapturedAt.In(r.loc).Format(CSVTimeLayout),
		strconv.FormatFloat(rd.Temperature, 'f', -1, 64),
		strconv.FormatFloat(rd.Humidity, 'f', -1, 64),
	}
	if err := w.Write(row); err != nil {
		return &models.StorageError{Op: "append", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &models.StorageError{Op: "append", Err: err}
	}
	return nil
}

// Recent streams the file and keeps only the last limit rows, so memory stays bounded
// by limit regardless of file size. Malformed rows are skipped.
func (r *ReadingCSV) Recent(ctx context.Context, limit int) ([]models.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []models.Reading{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Reading{}, nil
		}
		return nil, &models.StorageError{Op: "read", Err: err}
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	ring := make([]models.Reading, 0, limit)
	next := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				continue
			}
			return nil, &models.StorageError{Op: "read", Err: err}
		}
		rd, ok := r.parseRow(rec)
		if !ok {
			continue
		}
		if len(ring) < limit {
			ring = append(ring, rd)
			continue
		}
		ring[next] = rd
		next = (next + 1) % limit
	}

	out := make([]models.Reading, len(ring))
	n := len(ring)
	for i := range out {
		out[i] = ring[(next-1-i+n)%n]
	}
	return out, nil
}

// parseRow converts a data row; the header and malformed rows return false.
func (r *ReadingCSV) parseRow(rec []string) (models.Reading, bool) {
	if len(rec) < 3 {
		return models.Reading{}, false
	}
	ts, err := time.ParseInLocation(CSVTimeLayout, rec[0], r.loc)
	if err != nil {
		return models.Reading{}, false
	}
	temp, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return models.Reading{}, false
	}
	hum, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return models.Reading{}, false
	}
	return models.Reading{Temperature: temp, Humidity: hum, CapturedAt: ts}, true
}

func writeHeaderIfEmpty(f *os.File, w *csv.Writer) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() > 0 {
		return nil
	}
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"hvac_hub/internal/models"
	"hvac_hub/internal/repository"
)

func newIngestFixture(readings *readingLogStub, mirrors ...repository.ReadingSink) (*IngestionService, *SettingsArbiter) {
	now := func() time.Time { return t0 }
	a := NewSettingsArbiter(now)
	return NewIngestionService(a, readings, mirrors, now, nil), a
}

func TestIngestReading_StoresAndReturnsTimestamp(t *testing.T) {
	log := &readingLogStub{}
	mirror := &sinkStub{}
	svc, a := newIngestFixture(log, mirror)

	ts, err := svc.IngestReading(context.Background(), ReadingInput{
		Temperature: ptr(25.5),
		Humidity:    ptr(60.0),
		Hvac:        &models.HvacPatch{Power: ptr(models.SwitchOn), SetPoint: ptr(24)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.Equal(t0) {
		t.Fatalf("timestamp = %v, want %v", ts, t0)
	}

	latest, ok := svc.LatestReading()
	if !ok || latest.Temperature != 25.5 || latest.Humidity != 60 {
		t.Fatalf("latest = %+v ok=%v", latest, ok)
	}
	if log.count() != 1 || len(mirror.got) != 1 {
		t.Fatalf("appends: log=%d mirror=%d", log.count(), len(mirror.got))
	}

	hv := a.HvacSettings()
	if hv.Origin != models.OriginDevice || *hv.SetPoint != 24 {
		t.Fatalf("hvac = %+v", hv)
	}
}

func TestIngestReading_MissingFieldChangesNothing(t *testing.T) {
	cases := map[string]ReadingInput{
		"no humidity":    {Temperature: ptr(22.0)},
		"no temperature": {Humidity: ptr(40.0)},
		"empty":          {},
		"nan":            {Temperature: ptr(math.NaN()), Humidity: ptr(40.0)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			log := &readingLogStub{}
			svc, _ := newIngestFixture(log)

			_, err := svc.IngestReading(context.Background(), in)
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			if _, ok := svc.LatestReading(); ok {
				t.Fatalf("latest reading must stay unset")
			}
			if log.count() != 0 {
				t.Fatalf("log must not be appended")
			}
		})
	}
}

func TestIngestReading_MissingMessage(t *testing.T) {
	svc, _ := newIngestFixture(&readingLogStub{})
	_, err := svc.IngestReading(context.Background(), ReadingInput{Temperature: ptr(22.0)})
	if err == nil || err.Error() != "Missing temperature or humidity" {
		t.Fatalf("got %v", err)
	}
}

func TestIngestReading_InvalidSnapshotRejectsWholeReport(t *testing.T) {
	log := &readingLogStub{}
	svc, a := newIngestFixture(log)

	_, err := svc.IngestReading(context.Background(), ReadingInput{
		Temperature: ptr(22.0),
		Humidity:    ptr(40.0),
		Hvac:        &models.HvacPatch{SetPoint: ptr(10)},
	})
	var ve *models.ValidationError
	if !errors.As(err, &ve) || ve.Field != "set_temp" {
		t.Fatalf("want set_temp validation error, got %v", err)
	}
	if _, ok := svc.LatestReading(); ok || log.count() != 0 || a.HvacSettings().UpdatedAt != nil {
		t.Fatalf("rejected report must not mutate state")
	}
}

func TestIngestReading_StorageErrorSurfaces(t *testing.T) {
	log := &readingLogStub{appendErr: &models.StorageError{Op: "append", Err: errBoom}}
	svc, _ := newIngestFixture(log)

	_, err := svc.IngestReading(context.Background(), ReadingInput{Temperature: ptr(22.0), Humidity: ptr(40.0)})
	if !errors.Is(err, models.ErrStorage) {
		t.Fatalf("want storage error, got %v", err)
	}
	// latest is updated before the append
	if _, ok := svc.LatestReading(); !ok {
		t.Fatalf("latest reading should be set")
	}
}

func TestIngestReading_MirrorFailureIsNotFatal(t *testing.T) {
	log := &readingLogStub{}
	bad := &sinkStub{err: errBoom}
	good := &sinkStub{}
	svc, _ := newIngestFixture(log, bad, good)

	if _, err := svc.IngestReading(context.Background(), ReadingInput{Temperature: ptr(22.0), Humidity: ptr(40.0)}); err != nil {
		t.Fatalf("mirror error leaked: %v", err)
	}
	if log.count() != 1 || len(good.got) != 1 {
		t.Fatalf("log=%d good mirror=%d", log.count(), len(good.got))
	}
}

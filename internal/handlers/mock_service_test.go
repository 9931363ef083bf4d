package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hvac_hub/internal/models"
	"hvac_hub/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockIngestion struct {
	ts        time.Time
	err       error
	latest    models.Reading
	hasLatest bool

	calls  int
	lastIn service.ReadingInput
}

func (m *mockIngestion) IngestReading(ctx context.Context, in service.ReadingInput) (time.Time, error) {
	m.calls++
	m.lastIn = in
	return m.ts, m.err
}
func (m *mockIngestion) LatestReading() (models.Reading, bool) {
	return m.latest, m.hasLatest
}

type mockHvac struct {
	settings models.HvacSettings
	applyErr error

	applyCalls int
	lastPatch  models.HvacPatch
}

func (m *mockHvac) HvacSettings() models.HvacSettings { return m.settings }
func (m *mockHvac) ApplyWebCommand(p models.HvacPatch) (models.HvacSettings, error) {
	m.applyCalls++
	m.lastPatch = p
	return m.settings, m.applyErr
}

type mockSchedule struct {
	settings  models.ScheduleSettings
	updateErr error
	status    models.ScheduleStatus
	statusErr error

	lastPatch models.SchedulePatch
}

func (m *mockSchedule) ScheduleSettings() models.ScheduleSettings { return m.settings }
func (m *mockSchedule) UpdateSchedule(p models.SchedulePatch) (models.ScheduleSettings, error) {
	m.lastPatch = p
	return m.settings, m.updateErr
}
func (m *mockSchedule) ScheduleStatus() (models.ScheduleStatus, error) {
	return m.status, m.statusErr
}

type mockHistory struct {
	resp      []models.Reading
	lastLimit int
}

func (m *mockHistory) Recent(ctx context.Context, limit int) []models.Reading {
	m.lastLimit = limit
	return m.resp
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
}

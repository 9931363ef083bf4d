package handlers

import (
	"net/http"
	"strings"
	"testing"

	"hvac_hub/internal/models"
	"hvac_hub/internal/service"
)

func TestGetSchedule(t *testing.T) {
	sc := &mockSchedule{settings: models.ScheduleSettings{StartTime: "23:00", EndTime: "05:00"}}
	r := newTestRouter(&service.Service{Schedule: sc})

	w := doJSON(t, r, http.MethodGet, "/api/schedule", "")
	var got models.ScheduleSettings
	decodeBody(t, w, &got)
	if w.Code != http.StatusOK || got.Enabled || got.StartTime != "23:00" || got.EndTime != "05:00" {
		t.Fatalf("status=%d body=%+v", w.Code, got)
	}
}

func TestUpdateSchedule(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		updateErr error
		wantCode  int
		wantErr   string
	}{
		{name: "ok", body: `{"enabled":true,"start_time":"22:30"}`, wantCode: http.StatusOK},
		{
			name:      "bad time",
			body:      `{"start_time":"7:00"}`,
			updateErr: models.NewValidationError("start_time", "Invalid start_time format. Use HH:MM (24-hour)"),
			wantCode:  http.StatusBadRequest,
			wantErr:   "Invalid start_time format. Use HH:MM (24-hour)",
		},
		{name: "enabled not bool", body: `{"enabled":"yes"}`, wantCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := &mockSchedule{
				settings:  models.ScheduleSettings{Enabled: true, StartTime: "22:30", EndTime: "05:00"},
				updateErr: tc.updateErr,
			}
			r := newTestRouter(&service.Service{Schedule: sc})

			w := doJSON(t, r, http.MethodPost, "/api/schedule/update", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if tc.wantErr != "" {
				var resp map[string]string
				decodeBody(t, w, &resp)
				if resp["error"] != tc.wantErr {
					t.Fatalf("error = %q", resp["error"])
				}
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			if sc.lastPatch.Enabled == nil || !*sc.lastPatch.Enabled || *sc.lastPatch.StartTime != "22:30" || sc.lastPatch.EndTime != nil {
				t.Fatalf("patch = %+v", sc.lastPatch)
			}
			var resp ScheduleUpdateResponse
			decodeBody(t, w, &resp)
			if resp.Status != statusSuccess || resp.Schedule.StartTime != "22:30" {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestScheduleStatus(t *testing.T) {
	sc := &mockSchedule{status: models.ScheduleStatus{
		CurrentTime: "12:00", StartTime: "23:00", EndTime: "05:00", Message: "Schedule is disabled",
	}}
	r := newTestRouter(&service.Service{Schedule: sc})

	w := doJSON(t, r, http.MethodGet, "/api/schedule/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"should_be_on":null`) {
		t.Fatalf("should_be_on must be null while disabled: %s", w.Body.String())
	}

	sc.statusErr = errTest
	w = doJSON(t, r, http.MethodGet, "/api/schedule/status", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/repository"
	"smartcharge/internal/service"
)

type stubStationStore struct {
	station *models.Station
}

func (s *stubStationStore) GetByID(_ context.Context, id int64) (*models.Station, error) {
	if s.station == nil || s.station.ID != id {
		return nil, repository.ErrStationNotFound
	}
	snapshot := *s.station
	return &snapshot, nil
}

func (s *stubStationStore) List(_ context.Context) ([]models.Station, error) {
	if s.station == nil {
		return nil, nil
	}
	return []models.Station{*s.station}, nil
}

func (s *stubStationStore) UpdateHeartbeat(_ context.Context, id int64, status *models.StationStatus) (*models.Station, error) {
	if s.station == nil || s.station.ID != id {
		return nil, repository.ErrStationNotFound
	}
	now := time.Now().UTC()
	s.station.LastPing = &now
	if status != nil {
		s.station.Status = *status
	}
	snapshot := *s.station
	return &snapshot, nil
}

type stubTelemetryStore struct {
	samples int
}

func (s *stubTelemetryStore) Insert(_ context.Context, sample *models.TelemetrySample) error {
	s.samples++
	sample.ID = int64(s.samples)
	sample.RecordedAt = time.Now().UTC()
	return nil
}

func (s *stubTelemetryStore) RecentByStation(_ context.Context, _ int64, _ int) ([]models.TelemetrySample, error) {
	return nil, nil
}

type stubCommandStore struct {
	pending []models.Command
}

func (s *stubCommandStore) Create(_ context.Context, _ *models.Command) error { return nil }

func (s *stubCommandStore) ClaimOldestPending(_ context.Context, stationID int64) (*models.Command, error) {
	for i := range s.pending {
		if s.pending[i].StationID == stationID && s.pending[i].Status == models.CommandPending {
			now := time.Now().UTC()
			s.pending[i].Status = models.CommandSent
			s.pending[i].SentAt = &now
			cmd := s.pending[i]
			return &cmd, nil
		}
	}
	return nil, nil
}

func (s *stubCommandStore) RecentByStation(_ context.Context, _ int64, _ int) ([]models.Command, error) {
	return nil, nil
}

func newIngestMux(stations *stubStationStore, telemetry *stubTelemetryStore, commands *stubCommandStore) http.Handler {
	svc := service.NewIngestService(stations, telemetry, commands, nil, nil, nil, zap.NewNop())
	mux := http.NewServeMux()
	mux.Handle("POST /api/iot/stations/{id}", NewIngestHandler(svc, zap.NewNop()))
	return mux
}

func testStation() *stubStationStore {
	return &stubStationStore{station: &models.Station{
		ID:        1,
		Name:      "Station République B2",
		MaxPower:  50,
		PowerType: models.PowerDCFast,
		Status:    models.StationAvailable,
	}}
}

func postIngest(t *testing.T, mux http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestIngestHandlerReturnsNoneWithEmptyQueue(t *testing.T) {
	mux := newIngestMux(testStation(), &stubTelemetryStore{}, &stubCommandStore{})

	rec := postIngest(t, mux, "/api/iot/stations/1", `{"voltage": 228.5, "current": 0.1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Command string `json:"command"`
		Data    struct {
			Station struct {
				Status   models.StationStatus `json:"status"`
				LastPing *time.Time           `json:"lastPing"`
			} `json:"station"`
			Command string `json:"command"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope")
	}
	if resp.Command != "NONE" || resp.Data.Command != "NONE" {
		t.Fatalf("expected NONE sentinel at both levels, got %q / %q", resp.Command, resp.Data.Command)
	}
	if resp.Data.Station.Status != models.StationAvailable {
		t.Fatalf("expected AVAILABLE inferred, got %s", resp.Data.Station.Status)
	}
	if resp.Data.Station.LastPing == nil {
		t.Fatalf("accepted poll must report the refreshed lastPing")
	}
}

func TestIngestHandlerDeliversPendingCommand(t *testing.T) {
	commands := &stubCommandStore{pending: []models.Command{{
		ID:        7,
		StationID: 1,
		Type:      models.CommandReboot,
		Status:    models.CommandPending,
	}}}
	mux := newIngestMux(testStation(), &stubTelemetryStore{}, commands)

	rec := postIngest(t, mux, "/api/iot/stations/1", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Command != "REBOOT" {
		t.Fatalf("expected REBOOT, got %q", resp.Command)
	}
	if commands.pending[0].Status != models.CommandSent {
		t.Fatalf("delivered command must be SENT, got %s", commands.pending[0].Status)
	}
}

func TestIngestHandlerValidationFailureStoresNothing(t *testing.T) {
	telemetry := &stubTelemetryStore{}
	mux := newIngestMux(testStation(), telemetry, &stubCommandStore{})

	rec := postIngest(t, mux, "/api/iot/stations/1", `{"voltage": 600}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Success bool                 `json:"success"`
		Error   string               `json:"error"`
		Details []service.FieldError `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected failure envelope")
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "voltage" {
		t.Fatalf("expected voltage detail, got %v", resp.Details)
	}
	if telemetry.samples != 0 {
		t.Fatalf("validation failure must not store a sample, got %d", telemetry.samples)
	}
}

func TestIngestHandlerUnknownStation(t *testing.T) {
	mux := newIngestMux(testStation(), &stubTelemetryStore{}, &stubCommandStore{})

	rec := postIngest(t, mux, "/api/iot/stations/99", `{}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestIngestHandlerBadStationID(t *testing.T) {
	mux := newIngestMux(testStation(), &stubTelemetryStore{}, &stubCommandStore{})

	rec := postIngest(t, mux, "/api/iot/stations/not-a-number", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIngestHandlerMalformedJSON(t *testing.T) {
	mux := newIngestMux(testStation(), &stubTelemetryStore{}, &stubCommandStore{})

	rec := postIngest(t, mux, "/api/iot/stations/1", `{"voltage":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

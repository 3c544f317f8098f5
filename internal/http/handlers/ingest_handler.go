package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/service"
)

// IngestHandler accepts device polls: stores the sample, updates the station
// and hands back at most one queued command.
type IngestHandler struct {
	service *service.IngestService
	logger  *zap.Logger
}

// NewIngestHandler returns handler.
func NewIngestHandler(svc *service.IngestService, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{
		service: svc,
		logger:  logger,
	}
}

type stationSnapshot struct {
	ID       int64                `json:"id"`
	Status   models.StationStatus `json:"status"`
	LastPing *time.Time           `json:"lastPing"`
}

type ingestResponse struct {
	Success bool       `json:"success"`
	Command string     `json:"command"`
	Data    ingestData `json:"data"`
}

type ingestData struct {
	Telemetry *models.TelemetrySample `json:"telemetry"`
	Station   stationSnapshot         `json:"station"`
	Command   string                  `json:"command"`
}

// ServeHTTP handles POST /api/iot/stations/{id}.
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid station ID")
		return
	}

	var payload service.TelemetryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.service.Ingest(r.Context(), id, payload)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	snapshot := stationSnapshot{
		ID:       result.Station.ID,
		Status:   result.Station.Status,
		LastPing: result.Station.LastPing,
	}

	// Devices read the top-level command field; data repeats it alongside
	// the stored sample for operators replaying responses.
	writeJSON(w, http.StatusOK, ingestResponse{
		Success: true,
		Command: result.Command,
		Data: ingestData{
			Telemetry: result.Sample,
			Station:   snapshot,
			Command:   result.Command,
		},
	})
}

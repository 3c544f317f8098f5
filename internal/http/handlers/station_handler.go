package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/service"
)

const (
	defaultTelemetryLimit = 50
	maxTelemetryLimit     = 500
)

// StationHandler serves the read-only station API for dashboards.
type StationHandler struct {
	service *service.StationService
	logger  *zap.Logger
}

// NewStationHandler returns handler.
func NewStationHandler(svc *service.StationService, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/stations.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeSuccess(w, http.StatusOK, stations)
}

// Get handles GET /api/stations/{id}.
func (h *StationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid station ID")
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	writeSuccess(w, http.StatusOK, detail)
}

// Telemetry handles GET /api/stations/{id}/telemetry.
func (h *StationHandler) Telemetry(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid station ID")
		return
	}

	limit := defaultTelemetryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxTelemetryLimit {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	samples, err := h.service.RecentTelemetry(r.Context(), id, limit)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if samples == nil {
		samples = []models.TelemetrySample{}
	}
	writeSuccess(w, http.StatusOK, samples)
}

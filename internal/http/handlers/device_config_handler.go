package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/service"
)

// NewDeviceConfigHandler handles GET /api/iot/stations/{id}: the bootstrap
// read a device performs on startup. No side effects.
func NewDeviceConfigHandler(svc *service.IngestService, reportInterval time.Duration, logger *zap.Logger) http.HandlerFunc {
	type response struct {
		ID             int64            `json:"id"`
		Name           string           `json:"name"`
		DeviceID       *string          `json:"deviceId"`
		MaxPower       float64          `json:"maxPower"`
		PowerType      models.PowerType `json:"powerType"`
		ReportInterval int64            `json:"reportInterval"` // ms
		ServerTime     string           `json:"serverTime"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := stationID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid station ID")
			return
		}

		station, err := svc.DeviceConfig(r.Context(), id)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		writeSuccess(w, http.StatusOK, response{
			ID:             station.ID,
			Name:           station.Name,
			DeviceID:       station.DeviceID,
			MaxPower:       station.MaxPower,
			PowerType:      station.PowerType,
			ReportInterval: reportInterval.Milliseconds(),
			ServerTime:     time.Now().UTC().Format(time.RFC3339),
		})
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"smartcharge/internal/service"
)

// NewReservationHandler handles POST /api/reservations.
func NewReservationHandler(svc *service.ReservationService, logger *zap.Logger) http.HandlerFunc {
	type request struct {
		UserID    string `json:"userId"`
		StationID int64  `json:"stationId"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		var fields []service.FieldError
		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			fields = append(fields, service.FieldError{Field: "startTime", Reason: "must be an RFC 3339 timestamp"})
		}
		end, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			fields = append(fields, service.FieldError{Field: "endTime", Reason: "must be an RFC 3339 timestamp"})
		}
		if req.StationID <= 0 {
			fields = append(fields, service.FieldError{Field: "stationId", Reason: "must be a positive integer"})
		}
		if len(fields) > 0 {
			writeValidationError(w, fields)
			return
		}

		res, err := svc.Create(r.Context(), service.ReservationInput{
			UserID:    req.UserID,
			StationID: req.StationID,
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		writeSuccess(w, http.StatusCreated, res)
	}
}

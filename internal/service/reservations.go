package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/repository"
)

// ReservationInput is a candidate [StartTime, EndTime) slot.
type ReservationInput struct {
	UserID    string
	StationID int64
	StartTime time.Time
	EndTime   time.Time
}

// ReservationService decides admissibility of reservation requests.
type ReservationService struct {
	stations     StationStore
	users        UserStore
	reservations ReservationStore
	logger       *zap.Logger
}

// NewReservationService returns service instance.
func NewReservationService(stations StationStore, users UserStore, reservations ReservationStore, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		stations:     stations,
		users:        users,
		reservations: reservations,
		logger:       logger,
	}
}

// Create validates the interval, the station and the user, then hands the
// overlap check to the store, which serializes it per station. The stored
// predicate treats intervals as half-open: a candidate that only touches an
// existing reservation's boundary is admitted.
func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (*models.Reservation, error) {
	if input.UserID == "" {
		return nil, newValidationError("userId", "is required")
	}
	// users.id is a uuid column; anything that cannot be one is simply an
	// unknown user, not a database failure.
	if _, err := uuid.Parse(input.UserID); err != nil {
		return nil, repository.ErrUserNotFound
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, newValidationError("endTime", "must be after startTime")
	}

	station, err := s.stations.GetByID(ctx, input.StationID)
	if err != nil {
		return nil, err
	}
	if station.Status == models.StationMaintenance || station.Status == models.StationFault {
		return nil, ErrStationUnavailable
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		UserID:    input.UserID,
		StationID: input.StationID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    models.ReservationPending,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		zap.Int64("station_id", input.StationID),
		zap.String("user_id", input.UserID),
		zap.Time("start", input.StartTime),
		zap.Time("end", input.EndTime),
	)
	return res, nil
}

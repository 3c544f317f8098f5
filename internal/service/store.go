package service

import (
	"context"
	"time"

	"smartcharge/internal/models"
)

// StationStore is the registry surface the services depend on.
type StationStore interface {
	GetByID(ctx context.Context, id int64) (*models.Station, error)
	List(ctx context.Context) ([]models.Station, error)
	UpdateHeartbeat(ctx context.Context, id int64, status *models.StationStatus) (*models.Station, error)
}

// TelemetryStore is the append-only sample log.
type TelemetryStore interface {
	Insert(ctx context.Context, sample *models.TelemetrySample) error
	RecentByStation(ctx context.Context, stationID int64, limit int) ([]models.TelemetrySample, error)
}

// CommandStore is the per-station command queue.
type CommandStore interface {
	Create(ctx context.Context, cmd *models.Command) error
	ClaimOldestPending(ctx context.Context, stationID int64) (*models.Command, error)
	RecentByStation(ctx context.Context, stationID int64, limit int) ([]models.Command, error)
}

// ReservationStore persists reservations; Create returns
// repository.ErrReservationConflict when the slot overlaps.
type ReservationStore interface {
	Create(ctx context.Context, res *models.Reservation) error
}

// UserStore resolves and creates operator accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// PresenceStore tracks which devices polled recently. Optional collaborator.
type PresenceStore interface {
	Touch(ctx context.Context, stationID int64) error
	Online(ctx context.Context, stationID int64) (bool, error)
}

// EventPublisher fans accepted telemetry and status changes out to
// downstream consumers. Optional collaborator.
type EventPublisher interface {
	TelemetryAccepted(ctx context.Context, sample *models.TelemetrySample) error
	StatusChanged(ctx context.Context, stationID int64, status models.StationStatus) error
}

// StatusBroadcaster pushes station status updates to connected observers.
// Optional collaborator.
type StatusBroadcaster interface {
	BroadcastStatus(stationID int64, status models.StationStatus, lastPing time.Time)
}

package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
// COMPLETED and CANCELLED are terminal and never conflict with new requests.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationActive    ReservationStatus = "ACTIVE"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// Valid reports whether the reservation status is known.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationActive, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status excludes the reservation from
// conflict checks.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

// Reservation holds a half-open [StartTime, EndTime) slot on a station.
// Two reservations sharing only a boundary instant do not overlap.
type Reservation struct {
	ID        int64             `db:"id" json:"id"`
	UserID    string            `db:"user_id" json:"userId"`
	StationID int64             `db:"station_id" json:"stationId"`
	StartTime time.Time         `db:"start_time" json:"startTime"`
	EndTime   time.Time         `db:"end_time" json:"endTime"`
	Status    ReservationStatus `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"createdAt"`
}

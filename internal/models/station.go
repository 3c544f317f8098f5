package models

import "time"

// StationStatus is the operational state of a charging station.
type StationStatus string

const (
	StationAvailable   StationStatus = "AVAILABLE"
	StationOccupied    StationStatus = "OCCUPIED"
	StationReserved    StationStatus = "RESERVED"
	StationMaintenance StationStatus = "MAINTENANCE"
	StationFault       StationStatus = "FAULT"
)

// Valid reports whether the status is one of the known states.
func (s StationStatus) Valid() bool {
	switch s {
	case StationAvailable, StationOccupied, StationReserved, StationMaintenance, StationFault:
		return true
	}
	return false
}

// PowerType classifies a station's charging capability.
type PowerType string

const (
	PowerACSlow PowerType = "AC_SLOW"
	PowerACFast PowerType = "AC_FAST"
	PowerDCFast PowerType = "DC_FAST"
)

// Valid reports whether the power type is known.
func (p PowerType) Valid() bool {
	switch p {
	case PowerACSlow, PowerACFast, PowerDCFast:
		return true
	}
	return false
}

// Station represents a physical charging station. Identity and power
// characteristics are registry-owned; ingest mutates only status and last_ping.
type Station struct {
	ID        int64         `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	DeviceID  *string       `db:"device_id" json:"deviceId,omitempty"`
	MaxPower  float64       `db:"max_power" json:"maxPower"`
	PowerType PowerType     `db:"power_type" json:"powerType"`
	Status    StationStatus `db:"status" json:"status"`
	LastPing  *time.Time    `db:"last_ping" json:"lastPing,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

package models

import "time"

// TelemetrySample is one timestamped set of sensor readings from a station.
// Rows are append-only; nothing in the service mutates or deletes them.
type TelemetrySample struct {
	ID          int64      `db:"id" json:"id"`
	StationID   int64      `db:"station_id" json:"stationId"`
	Voltage     *float64   `db:"voltage" json:"voltage,omitempty"`
	Current     *float64   `db:"current" json:"current,omitempty"`
	Power       *float64   `db:"power" json:"power,omitempty"`
	Temperature *float64   `db:"temperature" json:"temperature,omitempty"`
	PVPower     *float64   `db:"pv_power" json:"pvPower,omitempty"`
	BattVoltage *float64   `db:"batt_voltage" json:"battVoltage,omitempty"`
	RecordedAt  time.Time  `db:"recorded_at" json:"recordedAt"`
}

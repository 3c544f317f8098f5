package repository

import (
	"context"
	"database/sql"

	"smartcharge/internal/models"
)

// TelemetryRepository persists sensor samples. The table is append-only.
type TelemetryRepository struct {
	db *sql.DB
}

// NewTelemetryRepository returns repository.
func NewTelemetryRepository(db *sql.DB) *TelemetryRepository {
	return &TelemetryRepository{db: db}
}

// Insert stores a new sample; recorded_at is assigned by the server clock.
func (r *TelemetryRepository) Insert(ctx context.Context, sample *models.TelemetrySample) error {
	const query = `
		INSERT INTO telemetry_data (station_id, voltage, current, power, temperature, pv_power, batt_voltage, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, recorded_at
	`
	return r.db.QueryRowContext(ctx, query,
		sample.StationID,
		sample.Voltage,
		sample.Current,
		sample.Power,
		sample.Temperature,
		sample.PVPower,
		sample.BattVoltage,
	).Scan(&sample.ID, &sample.RecordedAt)
}

// RecentByStation returns the latest samples, newest first.
func (r *TelemetryRepository) RecentByStation(ctx context.Context, stationID int64, limit int) ([]models.TelemetrySample, error) {
	const query = `
		SELECT id, station_id, voltage, current, power, temperature, pv_power, batt_voltage, recorded_at
		FROM telemetry_data
		WHERE station_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, stationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []models.TelemetrySample
	for rows.Next() {
		var s models.TelemetrySample
		if err := rows.Scan(&s.ID, &s.StationID, &s.Voltage, &s.Current, &s.Power, &s.Temperature, &s.PVPower, &s.BattVoltage, &s.RecordedAt); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

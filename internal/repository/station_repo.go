package repository

import (
	"context"
	"database/sql"
	"errors"

	"smartcharge/internal/models"
)

const stationColumns = `id, name, device_id, max_power, power_type, status, last_ping, created_at`

// StationRepository reads station rows and applies heartbeat updates.
// Station creation and identity fields are owned by the registry tooling.
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository returns repository.
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// GetByID fetches a single station.
func (r *StationRepository) GetByID(ctx context.Context, id int64) (*models.Station, error) {
	const query = `
		SELECT ` + stationColumns + `
		FROM stations
		WHERE id = $1
	`
	return scanStation(r.db.QueryRowContext(ctx, query, id))
}

// List returns all stations ordered by id.
func (r *StationRepository) List(ctx context.Context) ([]models.Station, error) {
	const query = `
		SELECT ` + stationColumns + `
		FROM stations
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.DeviceID, &s.MaxPower, &s.PowerType, &s.Status, &s.LastPing, &s.CreatedAt); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// UpdateHeartbeat stamps last_ping and, when status is non-nil, the new
// status in a single UPDATE, returning the fresh snapshot. last_ping moves
// on every accepted ingest regardless of status outcome.
func (r *StationRepository) UpdateHeartbeat(ctx context.Context, id int64, status *models.StationStatus) (*models.Station, error) {
	const query = `
		UPDATE stations
		SET last_ping = NOW(),
		    status = COALESCE($2, status)
		WHERE id = $1
		RETURNING ` + stationColumns + `
	`
	var st any
	if status != nil {
		st = string(*status)
	}
	return scanStation(r.db.QueryRowContext(ctx, query, id, st))
}

func scanStation(row *sql.Row) (*models.Station, error) {
	var s models.Station
	err := row.Scan(&s.ID, &s.Name, &s.DeviceID, &s.MaxPower, &s.PowerType, &s.Status, &s.LastPing, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return &s, nil
}

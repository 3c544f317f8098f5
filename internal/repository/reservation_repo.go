package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartcharge/internal/models"
)

// ReservationRepository persists reservations with serialized per-station
// conflict checking.
type ReservationRepository struct {
	db *sql.DB
}

// NewReservationRepository returns repository.
func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create checks the requested [start, end) slot against non-terminal
// reservations and inserts on success. Check and insert run in one
// transaction holding the station row lock, so two concurrent requests for
// the same station cannot both pass the overlap test.
func (r *ReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reservation: begin tx: %w", err)
	}
	defer tx.Rollback()

	const lockQuery = `SELECT id FROM stations WHERE id = $1 FOR UPDATE`
	var lockedID int64
	if err := tx.QueryRowContext(ctx, lockQuery, res.StationID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStationNotFound
		}
		return err
	}

	// Half-open intervals: touching boundaries is not a conflict.
	const overlapQuery = `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE station_id = $1
			  AND status IN ('PENDING', 'ACTIVE')
			  AND start_time < $3
			  AND end_time > $2
		)
	`
	var conflict bool
	if err := tx.QueryRowContext(ctx, overlapQuery, res.StationID, res.StartTime, res.EndTime).Scan(&conflict); err != nil {
		return err
	}
	if conflict {
		return ErrReservationConflict
	}

	const insertQuery = `
		INSERT INTO reservations (user_id, station_id, start_time, end_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	if err := tx.QueryRowContext(ctx, insertQuery,
		res.UserID,
		res.StationID,
		res.StartTime,
		res.EndTime,
		string(res.Status),
	).Scan(&res.ID, &res.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

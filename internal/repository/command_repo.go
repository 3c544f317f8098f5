package repository

import (
	"context"
	"database/sql"
	"errors"

	"smartcharge/internal/models"
)

// CommandRepository is the per-station FIFO of remote commands.
type CommandRepository struct {
	db *sql.DB
}

// NewCommandRepository returns repository.
func NewCommandRepository(db *sql.DB) *CommandRepository {
	return &CommandRepository{db: db}
}

// Create inserts a new PENDING command.
func (r *CommandRepository) Create(ctx context.Context, cmd *models.Command) error {
	const query = `
		INSERT INTO device_commands (station_id, command, payload, status, created_at)
		VALUES ($1, $2, $3, 'PENDING', NOW())
		RETURNING id, status, created_at
	`
	return r.db.QueryRowContext(ctx, query, cmd.StationID, string(cmd.Type), cmd.Payload).
		Scan(&cmd.ID, &cmd.Status, &cmd.CreatedAt)
}

// ClaimOldestPending atomically selects the oldest PENDING command for the
// station and marks it SENT. The claim is a single statement so two
// concurrent polls can never both receive the same command; SKIP LOCKED
// lets the loser fall through to "no command" instead of blocking.
// Returns (nil, nil) when the queue is empty.
func (r *CommandRepository) ClaimOldestPending(ctx context.Context, stationID int64) (*models.Command, error) {
	const query = `
		UPDATE device_commands
		SET status = 'SENT', sent_at = NOW()
		WHERE id = (
			SELECT id
			FROM device_commands
			WHERE station_id = $1 AND status = 'PENDING'
			ORDER BY created_at, id
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING id, station_id, command, payload, status, created_at, sent_at
	`
	var cmd models.Command
	err := r.db.QueryRowContext(ctx, query, stationID).
		Scan(&cmd.ID, &cmd.StationID, &cmd.Type, &cmd.Payload, &cmd.Status, &cmd.CreatedAt, &cmd.SentAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cmd, nil
}

// RecentByStation returns the latest commands, newest first.
func (r *CommandRepository) RecentByStation(ctx context.Context, stationID int64, limit int) ([]models.Command, error) {
	const query = `
		SELECT id, station_id, command, payload, status, created_at, sent_at
		FROM device_commands
		WHERE station_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, stationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commands []models.Command
	for rows.Next() {
		var cmd models.Command
		if err := rows.Scan(&cmd.ID, &cmd.StationID, &cmd.Type, &cmd.Payload, &cmd.Status, &cmd.CreatedAt, &cmd.SentAt); err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, rows.Err()
}

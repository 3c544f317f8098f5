package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"smartcharge/internal/models"
)

const defaultCommandHistory = 20

// CommandService enqueues operator commands and exposes the queue history.
// Dispatch itself lives on the ingest path.
type CommandService struct {
	stations StationStore
	commands CommandStore
	logger   *zap.Logger
}

// NewCommandService returns service instance.
func NewCommandService(stations StationStore, commands CommandStore, logger *zap.Logger) *CommandService {
	return &CommandService{
		stations: stations,
		commands: commands,
		logger:   logger,
	}
}

// Enqueue validates the command type and station, then inserts a PENDING row.
// The device picks it up on a later poll.
func (s *CommandService) Enqueue(ctx context.Context, stationID int64, rawType string, payload *string) (*models.Command, error) {
	cmdType := models.CommandType(strings.ToUpper(strings.TrimSpace(rawType)))
	if !cmdType.Valid() {
		return nil, newValidationError("command", "must be one of START, STOP, REBOOT")
	}

	if _, err := s.stations.GetByID(ctx, stationID); err != nil {
		return nil, err
	}

	cmd := &models.Command{
		StationID: stationID,
		Type:      cmdType,
		Payload:   payload,
	}
	if err := s.commands.Create(ctx, cmd); err != nil {
		return nil, err
	}

	s.logger.Info("command queued",
		zap.Int64("station_id", stationID),
		zap.String("command", string(cmdType)),
		zap.Int64("command_id", cmd.ID),
	)
	return cmd, nil
}

// Recent returns the latest commands for a station, newest first.
func (s *CommandService) Recent(ctx context.Context, stationID int64) ([]models.Command, error) {
	if _, err := s.stations.GetByID(ctx, stationID); err != nil {
		return nil, err
	}
	return s.commands.RecentByStation(ctx, stationID, defaultCommandHistory)
}

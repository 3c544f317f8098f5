package service

import (
	"context"

	"go.uber.org/zap"

	"smartcharge/internal/models"
)

// CommandNone is the sentinel a device receives when its queue is empty.
const CommandNone = "NONE"

// IngestResult is everything an accepted poll hands back to the device.
type IngestResult struct {
	Sample  *models.TelemetrySample
	Station *models.Station
	Command string
}

// IngestService runs the poll pipeline: validate, append, infer, heartbeat,
// dispatch. Presence, events and the status feed are optional collaborators
// and never fail the request.
type IngestService struct {
	stations  StationStore
	telemetry TelemetryStore
	commands  CommandStore
	presence  PresenceStore
	events    EventPublisher
	feed      StatusBroadcaster
	logger    *zap.Logger
}

// NewIngestService returns service instance.
func NewIngestService(
	stations StationStore,
	telemetry TelemetryStore,
	commands CommandStore,
	presence PresenceStore,
	events EventPublisher,
	feed StatusBroadcaster,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		stations:  stations,
		telemetry: telemetry,
		commands:  commands,
		presence:  presence,
		events:    events,
		feed:      feed,
		logger:    logger,
	}
}

// Ingest processes one device poll. Validation and the device-binding check
// happen before any write; at most one command transitions PENDING -> SENT.
func (s *IngestService) Ingest(ctx context.Context, stationID int64, payload TelemetryPayload) (*IngestResult, error) {
	if fields := ValidateTelemetryPayload(payload); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	station, err := s.stations.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if payload.DeviceID != nil {
		if station.DeviceID == nil || *station.DeviceID != *payload.DeviceID {
			return nil, ErrDeviceMismatch
		}
	}

	sample := &models.TelemetrySample{
		StationID:   stationID,
		Voltage:     payload.Voltage,
		Current:     payload.Current,
		Power:       payload.Power,
		Temperature: payload.Temperature,
		PVPower:     payload.PVPower,
		BattVoltage: payload.BattVoltage,
	}
	if err := s.telemetry.Insert(ctx, sample); err != nil {
		return nil, err
	}

	// Explicit status wins over inference; neither leaves status untouched.
	newStatus := payload.ExplicitStatus()
	if newStatus == nil {
		newStatus = InferStatus(payload.Current, payload.Voltage)
	}

	previousStatus := station.Status
	updated, err := s.stations.UpdateHeartbeat(ctx, stationID, newStatus)
	if err != nil {
		return nil, err
	}

	claimed, err := s.commands.ClaimOldestPending(ctx, stationID)
	if err != nil {
		return nil, err
	}
	command := CommandNone
	if claimed != nil {
		command = string(claimed.Type)
	}

	s.notify(ctx, sample, previousStatus, updated)

	return &IngestResult{
		Sample:  sample,
		Station: updated,
		Command: command,
	}, nil
}

// DeviceConfig resolves the station for the bootstrap read.
func (s *IngestService) DeviceConfig(ctx context.Context, stationID int64) (*models.Station, error) {
	return s.stations.GetByID(ctx, stationID)
}

// notify refreshes presence and fans the accepted sample out. Failures here
// are logged, never surfaced: the device already got its answer.
func (s *IngestService) notify(ctx context.Context, sample *models.TelemetrySample, previous models.StationStatus, updated *models.Station) {
	if s.presence != nil {
		if err := s.presence.Touch(ctx, updated.ID); err != nil {
			s.logger.Warn("failed to refresh device presence", zap.Int64("station_id", updated.ID), zap.Error(err))
		}
	}
	if s.events != nil {
		if err := s.events.TelemetryAccepted(ctx, sample); err != nil {
			s.logger.Warn("failed to publish telemetry event", zap.Int64("station_id", updated.ID), zap.Error(err))
		}
	}
	if updated.Status == previous {
		return
	}
	if s.events != nil {
		if err := s.events.StatusChanged(ctx, updated.ID, updated.Status); err != nil {
			s.logger.Warn("failed to publish status event", zap.Int64("station_id", updated.ID), zap.Error(err))
		}
	}
	if s.feed != nil && updated.LastPing != nil {
		s.feed.BroadcastStatus(updated.ID, updated.Status, *updated.LastPing)
	}
}

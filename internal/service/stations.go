package service

import (
	"context"

	"go.uber.org/zap"

	"smartcharge/internal/models"
)

// StationSummary pairs a station with its live presence flag.
type StationSummary struct {
	models.Station
	Online bool `json:"online"`
}

// StationDetail is a station plus its most recent samples.
type StationDetail struct {
	Station models.Station           `json:"station"`
	Online  bool                     `json:"online"`
	Recent  []models.TelemetrySample `json:"recentTelemetry"`
}

const detailTelemetryLimit = 10

// StationService serves the read-only station API consumed by dashboards.
type StationService struct {
	stations  StationStore
	telemetry TelemetryStore
	presence  PresenceStore
	logger    *zap.Logger
}

// NewStationService returns service instance.
func NewStationService(stations StationStore, telemetry TelemetryStore, presence PresenceStore, logger *zap.Logger) *StationService {
	return &StationService{
		stations:  stations,
		telemetry: telemetry,
		presence:  presence,
		logger:    logger,
	}
}

// List returns every station annotated with presence.
func (s *StationService) List(ctx context.Context) ([]StationSummary, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]StationSummary, 0, len(stations))
	for _, st := range stations {
		summaries = append(summaries, StationSummary{
			Station: st,
			Online:  s.online(ctx, st.ID),
		})
	}
	return summaries, nil
}

// Get returns one station with recent telemetry attached.
func (s *StationService) Get(ctx context.Context, id int64) (*StationDetail, error) {
	station, err := s.stations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	recent, err := s.telemetry.RecentByStation(ctx, id, detailTelemetryLimit)
	if err != nil {
		return nil, err
	}
	return &StationDetail{
		Station: *station,
		Online:  s.online(ctx, id),
		Recent:  recent,
	}, nil
}

// RecentTelemetry returns the latest samples for a station, newest first.
func (s *StationService) RecentTelemetry(ctx context.Context, id int64, limit int) ([]models.TelemetrySample, error) {
	if _, err := s.stations.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.telemetry.RecentByStation(ctx, id, limit)
}

func (s *StationService) online(ctx context.Context, id int64) bool {
	if s.presence == nil {
		return false
	}
	online, err := s.presence.Online(ctx, id)
	if err != nil {
		s.logger.Warn("presence lookup failed", zap.Int64("station_id", id), zap.Error(err))
		return false
	}
	return online
}

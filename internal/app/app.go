package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"smartcharge/internal/config"
	"smartcharge/internal/events"
	httpserver "smartcharge/internal/http"
	"smartcharge/internal/http/handlers"
	"smartcharge/internal/http/middleware"
	"smartcharge/internal/password"
	"smartcharge/internal/presence"
	"smartcharge/internal/repository"
	"smartcharge/internal/service"
	"smartcharge/internal/ws"
	libdb "smartcharge/libs/db"
	libredis "smartcharge/libs/redis"
)

// App wires the service dependency graph.
type App struct {
	server      *httpserver.Server
	hub         *ws.Hub
	db          *sql.DB
	redisClient *redis.Client
	publisher   *events.Publisher
	logger      *zap.Logger
}

// New constructs the application graph. Redis and RabbitMQ are optional:
// with no address configured, presence and event publishing are disabled.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := libdb.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	var presenceStore service.PresenceStore
	if cfg.Redis.Addr != "" {
		redisClient, err = libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		presenceStore = presence.NewStore(redisClient, cfg.PresenceTTL())
	}

	var publisher *events.Publisher
	var eventPublisher service.EventPublisher
	if cfg.AMQP.URL != "" {
		publisher, err = events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			if redisClient != nil {
				redisClient.Close()
			}
			sqlDB.Close()
			return nil, err
		}
		eventPublisher = publisher
	}

	stationRepo := repository.NewStationRepository(sqlDB)
	telemetryRepo := repository.NewTelemetryRepository(sqlDB)
	commandRepo := repository.NewCommandRepository(sqlDB)
	reservationRepo := repository.NewReservationRepository(sqlDB)
	userRepo := repository.NewUserRepository(sqlDB)

	hub := ws.NewHub(logger)

	tokenService := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, password.NewBcryptHasher(0), tokenService, logger)
	ingestService := service.NewIngestService(stationRepo, telemetryRepo, commandRepo, presenceStore, eventPublisher, hub, logger)
	commandService := service.NewCommandService(stationRepo, commandRepo, logger)
	reservationService := service.NewReservationService(stationRepo, userRepo, reservationRepo, logger)
	stationService := service.NewStationService(stationRepo, telemetryRepo, presenceStore, logger)

	ingestHandler := handlers.NewIngestHandler(ingestService, logger)
	commandHandler := handlers.NewCommandHandler(commandService, logger)
	stationHandler := handlers.NewStationHandler(stationService, logger)

	routes := httpserver.Routes{
		Ingest:           ingestHandler,
		DeviceConfig:     handlers.NewDeviceConfigHandler(ingestService, cfg.ReportInterval(), logger),
		Register:         handlers.NewRegisterHandler(authService, logger),
		Login:            handlers.NewLoginHandler(authService, logger),
		Me:               handlers.NewMeHandler(authService, logger),
		StationList:      http.HandlerFunc(stationHandler.List),
		StationDetail:    http.HandlerFunc(stationHandler.Get),
		StationTelemetry: http.HandlerFunc(stationHandler.Telemetry),
		CommandEnqueue:   http.HandlerFunc(commandHandler.Enqueue),
		CommandList:      http.HandlerFunc(commandHandler.List),
		ReservationNew:   handlers.NewReservationHandler(reservationService, logger),
		StatusFeed:       ws.NewFeedHandler(hub, logger),
		Health:           handlers.NewHealthHandler(),
	}

	deviceAuth := middleware.DeviceAuth(cfg.Device.APIKey, cfg.IsProduction())
	userAuth := middleware.UserAuth(tokenService)

	router := httpserver.NewRouter(routes, deviceAuth, userAuth)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		hub:         hub,
		db:          sqlDB,
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}, nil
}

// Run starts the status feed hub and the HTTP server.
func (a *App) Run(ctx context.Context) error {
	go a.hub.Run(ctx)
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close event publisher", zap.Error(err))
		}
	}
}

package httpserver

import "net/http"

// Routes defines HTTP endpoints.
type Routes struct {
	Ingest           http.Handler
	DeviceConfig     http.Handler
	Register         http.Handler
	Login            http.Handler
	Me               http.Handler
	StationList      http.Handler
	StationDetail    http.Handler
	StationTelemetry http.Handler
	CommandEnqueue   http.Handler
	CommandList      http.Handler
	ReservationNew   http.Handler
	StatusFeed       http.Handler
	Health           http.Handler
}

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// NewRouter sets up HTTP routing. Device endpoints sit behind the API-key
// gate; operator endpoints behind bearer auth.
func NewRouter(routes Routes, deviceAuth, userAuth Middleware) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.Handler, mw Middleware) {
		if h == nil {
			return
		}
		if mw != nil {
			h = mw(h)
		}
		mux.Handle(pattern, h)
	}

	handle("POST /api/iot/stations/{id}", routes.Ingest, deviceAuth)
	handle("GET /api/iot/stations/{id}", routes.DeviceConfig, deviceAuth)

	handle("POST /api/auth/register", routes.Register, nil)
	handle("POST /api/auth/login", routes.Login, nil)
	handle("GET /api/auth/me", routes.Me, userAuth)

	handle("GET /api/stations", routes.StationList, userAuth)
	handle("GET /api/stations/{id}", routes.StationDetail, userAuth)
	handle("GET /api/stations/{id}/telemetry", routes.StationTelemetry, userAuth)
	handle("POST /api/stations/{id}/command", routes.CommandEnqueue, userAuth)
	handle("GET /api/stations/{id}/commands", routes.CommandList, userAuth)

	handle("POST /api/reservations", routes.ReservationNew, userAuth)

	handle("GET /ws/stations", routes.StatusFeed, nil)
	handle("GET /health", routes.Health, nil)

	return mux
}

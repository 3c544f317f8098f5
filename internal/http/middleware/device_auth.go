package middleware

import "net/http"

const apiKeyHeader = "X-API-Key"

// DeviceAuth gates device endpoints behind a shared API key. With no key
// configured, requests pass only outside production. The check is stateless
// and runs before any other processing.
func DeviceAuth(apiKey string, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				if production {
					unauthorized(w, "device API key not configured")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if r.Header.Get(apiKeyHeader) != apiKey {
				unauthorized(w, "invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized: ` + msg + `"}`))
}

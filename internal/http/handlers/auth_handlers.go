package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"smartcharge/internal/http/middleware"
	"smartcharge/internal/models"
	"smartcharge/internal/service"
)

type authResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *models.User `json:"user"`
}

// NewRegisterHandler handles POST /api/auth/register.
func NewRegisterHandler(authService *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		user, token, err := authService.Register(r.Context(), req.Email, req.Name, req.Password)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		writeSuccess(w, http.StatusCreated, authResponse{
			Token:     token,
			TokenType: "Bearer",
			User:      user,
		})
	}
}

// NewLoginHandler handles POST /api/auth/login.
func NewLoginHandler(authService *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, token, err := authService.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		writeSuccess(w, http.StatusOK, authResponse{
			Token:     token,
			TokenType: "Bearer",
			User:      user,
		})
	}
}

// NewMeHandler handles GET /api/auth/me.
func NewMeHandler(authService *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := authService.Me(r.Context(), userID)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeSuccess(w, http.StatusOK, user)
	}
}

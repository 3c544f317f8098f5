package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/service"
)

// CommandHandler exposes the operator side of the command queue.
type CommandHandler struct {
	service *service.CommandService
	logger  *zap.Logger
}

// NewCommandHandler returns handler.
func NewCommandHandler(svc *service.CommandService, logger *zap.Logger) *CommandHandler {
	return &CommandHandler{
		service: svc,
		logger:  logger,
	}
}

// Enqueue handles POST /api/stations/{id}/command.
func (h *CommandHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Command string  `json:"command"`
		Payload *string `json:"payload"`
	}
	type response struct {
		CommandID int64                `json:"commandId"`
		Command   models.CommandType   `json:"command"`
		Status    models.CommandStatus `json:"status"`
		Message   string               `json:"message"`
	}

	id, ok := stationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid station ID")
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	cmd, err := h.service.Enqueue(r.Context(), id, req.Command, req.Payload)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, response{
		CommandID: cmd.ID,
		Command:   cmd.Type,
		Status:    cmd.Status,
		Message:   fmt.Sprintf("Command %q queued for station %d", cmd.Type, id),
	})
}

// List handles GET /api/stations/{id}/commands.
func (h *CommandHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid station ID")
		return
	}

	commands, err := h.service.Recent(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if commands == nil {
		commands = []models.Command{}
	}

	writeSuccess(w, http.StatusOK, commands)
}

package set_client

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/api/handlers/wizardview"
	resolveClient "github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgSessionNotFound    = "sesión del asistente no encontrada"
	msgInvalidClientData  = "datos del cliente inválidos"
	msgEmailRequired      = "el email es obligatorio"
	msgInvalidTransition  = "la asignación de cliente no está permitida en el paso actual"
)

type Handler struct {
	controller WizardController
	logger     Logger
}

func NewHandler(controller WizardController, logger Logger) *Handler {
	return &Handler{
		controller: controller,
		logger:     logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/client - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, isNew := req.ToDomain()

	snapshot, err := h.controller.SetClient(sessionID, client, isNew)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/client - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, resolveClient.ErrInvalidClientData):
			h.logger.Warn("POST /wizard/{id}/client - Invalid client data: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, clientValidationMessage(err))

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/client - Invalid transition: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/{id}/client - Failed to set client: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/client - Client set: session_id=%s, new=%t", sessionID, isNew)
	handlers.RespondJSON(w, http.StatusOK, wizardview.FromSnapshot(snapshot))
}

// clientValidationMessage уточняет сообщение для самой частой ошибки
// оператора - пропущенного email
func clientValidationMessage(err error) string {
	if strings.Contains(err.Error(), "email is required") {
		return msgEmailRequired
	}
	return msgInvalidClientData
}

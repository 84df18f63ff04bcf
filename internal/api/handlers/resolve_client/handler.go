package resolve_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	resolveClient "github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgSessionNotFound    = "sesión del asistente no encontrada"
	msgInvalidDNI         = "DNI inválido, se esperan 6-10 dígitos"
	msgInvalidTransition  = "la búsqueda de cliente no está permitida en el paso actual"
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

// Handle POST /api/v1/wizard/{sessionId}/client/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ResolveClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/client/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.controller.ResolveClient(r.Context(), sessionID, req.DNI)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/client/resolve - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/client/resolve - Invalid transition: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, resolveClient.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/client/resolve - Invalid dni: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDNI)

		default:
			h.logger.Error("POST /wizard/{id}/client/resolve - Failed to resolve client: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/client/resolve - Client resolved: session_id=%s, found=%t", sessionID, result.Found)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

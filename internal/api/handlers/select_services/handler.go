package select_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/api/handlers/wizardview"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgSessionNotFound    = "sesión del asistente no encontrada"
	msgInvalidTransition  = "la selección de servicios no está permitida en el paso actual"
	msgIneligibleAddOn    = "servicio no disponible para el tipo de cancha seleccionado"
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

// Handle POST /api/v1/wizard/{sessionId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.controller.SetServices(sessionID, req.ToSelection())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/services - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrIneligibleAddOn):
			h.logger.Warn("POST /wizard/{id}/services - Ineligible add-on: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgIneligibleAddOn)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/services - Invalid transition: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/{id}/services - Failed to set services: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/services - Services set: session_id=%s, total=%.2f", sessionID, snapshot.Total)
	handlers.RespondJSON(w, http.StatusOK, wizardview.FromSnapshot(snapshot))
}

package get_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/api/handlers/wizardview"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgSessionNotFound = "sesión del asistente no encontrada"
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

// Handle GET /api/v1/wizard/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	snapshot, err := h.controller.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("GET /wizard/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /wizard/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wizardview.FromSnapshot(snapshot))
}

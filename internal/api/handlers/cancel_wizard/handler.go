package cancel_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgSessionNotFound = "sesión del asistente no encontrada"
	msgCannotCancel    = "la sesión ya no se puede cancelar"
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

// Handle DELETE /api/v1/wizard/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.controller.Cancel(sessionID); err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("DELETE /wizard/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrCannotCancel):
			h.logger.Warn("DELETE /wizard/{id} - Cannot cancel: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("DELETE /wizard/{id} - Failed to cancel: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wizard/{id} - Session cancelled: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/api/handlers/wizardview"
	getAvailableSlots "github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgSessionNotFound    = "sesión del asistente no encontrada"
	msgCourtNotFound      = "cancha no encontrada"
	msgCourtInactive      = "la cancha no está disponible para reservas"
	msgSlotUnavailable    = "el turno seleccionado ya no está disponible"
	msgInvalidTransition  = "la selección de turno no está permitida en el paso actual"
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

// Handle POST /api/v1/wizard/{sessionId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.controller.SelectSlot(r.Context(), sessionID, req.CourtID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/slot - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("POST /wizard/{id}/slot - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrCourtInactive):
			h.logger.Warn("POST /wizard/{id}/slot - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/slot - Invalid input: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, wizard.ErrSlotUnavailable):
			h.logger.Warn("POST /wizard/{id}/slot - Slot unavailable: court_id=%d, slot_id=%d", req.CourtID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/slot - Invalid transition: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/{id}/slot - Failed to select slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/slot - Slot selected: session_id=%s, court_id=%d, slot_id=%d",
		sessionID, req.CourtID, req.SlotID)
	handlers.RespondJSON(w, http.StatusOK, wizardview.FromSnapshot(snapshot))
}

package start_wizard

import (
	"net/http"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/api/handlers/wizardview"
	"github.com/estadia/BookingWizardService/internal/api/middleware"
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

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := middleware.StaffIDFromContext(r.Context())

	snapshot := h.controller.Start(staffID)

	h.logger.Info("POST /wizard - Session started: session_id=%s, staff_id=%s", snapshot.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, wizardview.FromSnapshot(snapshot))
}

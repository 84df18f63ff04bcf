package list_courts

import (
	"net/http"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
)

const (
	msgCatalogueUnavailable = "el catálogo de canchas no está disponible"
)

type Handler struct {
	courtClient CourtServiceClient
	logger      Logger
}

func NewHandler(courtClient CourtServiceClient, logger Logger) *Handler {
	return &Handler{
		courtClient: courtClient,
		logger:      logger,
	}
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts, err := h.courtClient.ListCourts(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgCatalogueUnavailable)
		return
	}

	response := FromCatalogue(courts)

	h.logger.Info("GET /courts - %d active courts returned", len(response.Courts))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	getAvailableSlots "github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCourtID = "ID de cancha inválido"
	msgInvalidDate    = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgCourtNotFound  = "cancha no encontrada"
	msgCourtInactive  = "la cancha no está disponible para reservas"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/available-slots
// Query params: date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/available-slots - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Формируем запрос к use case (с парсингом опциональной даты)
	useCaseReq, err := ToUseCaseRequest(courtID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/available-slots - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrCourtInactive):
			h.logger.Warn("GET /courts/{id}/available-slots - Court inactive: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/available-slots - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		default:
			h.logger.Error("GET /courts/{id}/available-slots - Failed to get slots: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /courts/{id}/available-slots - Slots retrieved successfully: court_id=%d, slots_count=%d",
		courtID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package submit_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
	"github.com/estadia/BookingWizardService/internal/api/handlers/wizardview"
	"github.com/estadia/BookingWizardService/internal/domain"
	submitBooking "github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgSessionNotFound      = "sesión del asistente no encontrada"
	msgInvalidPaymentMethod = "método de pago inválido"
	msgInvalidTransition    = "la reserva no se puede enviar desde el paso actual"
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

// Handle POST /api/v1/wizard/{sessionId}/submit
//
// Отправка синхронная: ответ приходит после прохождения всего конвейера,
// включая ожидание подтверждения шлюза для онлайн-оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.controller.Submit(r.Context(), sessionID, domain.PaymentMethod(req.PaymentMethod), req.TournamentID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /wizard/{id}/submit - Invalid payment method: session_id=%s, method=%s", sessionID, req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/submit - Invalid transition: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Исход отправки лежит в снимке сессии. Тело ответа одно и то же для
	// успеха и неудачи - фронтенду нужны созданные ID в обоих случаях,
	// различается только статус
	status := http.StatusOK
	if snapshot.Failure != nil {
		switch {
		case errors.Is(snapshot.Failure, submitBooking.ErrSlotConflict):
			status = http.StatusConflict
		case errors.Is(snapshot.Failure, submitBooking.ErrIncompleteDraft),
			errors.Is(snapshot.Failure, submitBooking.ErrInvalidInput):
			status = http.StatusBadRequest
		default:
			status = http.StatusBadGateway
		}
		h.logger.Warn("POST /wizard/{id}/submit - Submission failed: session_id=%s, error=%v", sessionID, snapshot.Failure)
	} else {
		h.logger.Info("POST /wizard/{id}/submit - Submission succeeded: session_id=%s", sessionID)
	}

	handlers.RespondJSON(w, status, wizardview.FromSnapshot(snapshot))
}

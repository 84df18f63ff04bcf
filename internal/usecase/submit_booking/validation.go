package submit_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет, что черновик полностью собран и пригоден к отправке
// Состояние мастера уже гарантирует полноту, но usecase перепроверяет сам:
// он не должен зависеть от дисциплины вызывающего кода
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	draft := req.Draft

	if !draft.HasSlot() {
		return fmt.Errorf("%w: court and slot are required", ErrIncompleteDraft)
	}

	if !draft.Slot.IsAvailable() {
		return fmt.Errorf("%w: selected slot is not available", ErrIncompleteDraft)
	}

	if !draft.Court.IsActive() {
		return fmt.Errorf("%w: selected court is inactive", ErrIncompleteDraft)
	}

	if draft.Client == nil {
		return fmt.Errorf("%w: client is required", ErrIncompleteDraft)
	}

	if !draft.Client.IsPersisted() && !draft.NewClient {
		return fmt.Errorf("%w: client is neither persisted nor marked as new", ErrIncompleteDraft)
	}

	if !draft.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: payment method is required", ErrIncompleteDraft)
	}

	return nil
}

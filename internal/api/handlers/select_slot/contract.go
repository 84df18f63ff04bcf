package select_slot

import (
	"context"

	"github.com/estadia/BookingWizardService/internal/wizard"
)

type WizardController interface {
	SelectSlot(ctx context.Context, sessionID string, courtID, slotID int64) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

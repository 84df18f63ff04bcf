package submit_wizard

import (
	"context"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

type WizardController interface {
	Submit(ctx context.Context, sessionID string, method domain.PaymentMethod, tournamentID *int64) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

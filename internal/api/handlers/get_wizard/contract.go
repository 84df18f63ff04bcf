package get_wizard

import (
	"github.com/estadia/BookingWizardService/internal/wizard"
)

type WizardController interface {
	Get(sessionID string) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package start_wizard

import (
	"github.com/estadia/BookingWizardService/internal/wizard"
)

type WizardController interface {
	Start(staffID string) wizard.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

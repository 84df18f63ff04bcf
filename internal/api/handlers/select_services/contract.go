package select_services

import (
	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

type WizardController interface {
	SetServices(sessionID string, sel domain.AddOnSelection) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

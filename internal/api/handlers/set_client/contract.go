package set_client

import (
	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

type WizardController interface {
	SetClient(sessionID string, client *domain.Client, isNew bool) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package resolve_client

import (
	"context"

	resolveClient "github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
)

type WizardController interface {
	ResolveClient(ctx context.Context, sessionID, dni string) (*resolveClient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_courts

import (
	"context"

	"github.com/estadia/BookingWizardService/internal/integrations/courtservice"
)

type CourtServiceClient interface {
	ListCourts(ctx context.Context) ([]courtservice.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

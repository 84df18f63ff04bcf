package get_available_slots

import (
	"context"
	"time"

	"github.com/estadia/BookingWizardService/internal/integrations/courtservice"
)

// CourtServiceClient интерфейс клиента для CourtService
type CourtServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*courtservice.Court, error)
	ListSlots(ctx context.Context, courtID int64, date *time.Time) ([]courtservice.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

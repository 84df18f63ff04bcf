package resolve_client

import (
	"context"

	"github.com/estadia/BookingWizardService/internal/integrations/clientservice"
)

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	FindByDNI(ctx context.Context, dni string) (*clientservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package submit_booking

import (
	"context"
	"time"

	"github.com/estadia/BookingWizardService/internal/infra/storage/submissionlog"
	"github.com/estadia/BookingWizardService/internal/integrations/clientservice"
	"github.com/estadia/BookingWizardService/internal/integrations/mailservice"
	"github.com/estadia/BookingWizardService/internal/integrations/paymentservice"
	"github.com/estadia/BookingWizardService/internal/integrations/reservationservice"
)

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	FindByDNI(ctx context.Context, dni string) (*clientservice.User, error)
	CreateClient(ctx context.Context, req *clientservice.CreateClientRequest) (*clientservice.User, error)
}

// ReservationServiceClient интерфейс клиента для ReservationService
type ReservationServiceClient interface {
	CreateServiceRecord(ctx context.Context, req *reservationservice.CreateServiceRecordRequest) (int64, error)
	CreateReservation(ctx context.Context, req *reservationservice.CreateReservationRequest) (*reservationservice.Reservation, error)
}

// PaymentServiceClient интерфейс клиента для PaymentService
type PaymentServiceClient interface {
	CreatePayment(ctx context.Context, req *paymentservice.CreatePaymentRequest) (*paymentservice.Payment, error)
}

// MailServiceClient интерфейс клиента для MailService
type MailServiceClient interface {
	SendReceipt(ctx context.Context, req *mailservice.SendReceiptRequest) error
}

// SubmissionLogRepository интерфейс репозитория журнала отправок
type SubmissionLogRepository interface {
	Create(ctx context.Context, rec *submissionlog.Record) (*submissionlog.Record, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

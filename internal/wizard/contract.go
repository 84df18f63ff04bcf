package wizard

import (
	"context"
	"time"

	"github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
	"github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
)

// AvailableSlotsUseCase интерфейс use case получения доступных слотов
type AvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// ResolveClientUseCase интерфейс use case поиска клиента по DNI
type ResolveClientUseCase interface {
	Execute(ctx context.Context, req *resolve_client.Request) (*resolve_client.Response, error)
}

// SubmitBookingUseCase интерфейс use case отправки брони
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
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

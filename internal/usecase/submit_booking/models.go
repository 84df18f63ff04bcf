package submit_booking

import (
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
)

// Step шаг конвейера отправки брони
type Step string

const (
	// StepClient материализация клиента (поиск или регистрация)
	StepClient Step = "client_materialization"
	// StepServiceRecord создание записи дополнительных услуг
	StepServiceRecord Step = "service_record"
	// StepReservation создание резервации
	StepReservation Step = "reservation"
	// StepPayment регистрация платежа
	StepPayment Step = "payment"
)

// Request модель запроса на отправку собранной брони
type Request struct {
	SessionID string              // ID сессии мастера (для журнала отправок)
	StaffID   string              // ID сотрудника, ведущего мастер (для журнала отправок)
	Draft     domain.BookingDraft // Полностью собранный черновик
}

// Response результат отправки брони
//
// Отправка идёт без отката: при сбое на шаге N сущности, созданные шагами
// 1..N-1, остаются на бэкенде. Ответ всегда перечисляет полученные ID,
// чтобы оператор мог свериться с бэкендом вручную
type Response struct {
	Success    bool
	FailedStep Step // Заполнен только при Success=false

	ClientID        int64
	ClientName      string // Полное имя клиента (для экрана подтверждения)
	ServiceRecordID *int64 // nil, если услуги не выбирались
	ReservationID   int64
	PaymentID       int64

	TotalPrice    float64
	PaymentStatus domain.PaymentStatus
	PaymentDate   *time.Time
	ReceiptSent   bool
}

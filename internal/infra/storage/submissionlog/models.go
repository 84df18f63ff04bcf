package submissionlog

import "time"

// Возможные исходы отправки брони
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Record запись журнала отправок броней
// Журнал ведётся best-effort для ручной сверки оператором: отправка без
// отката может завершиться частично, и журнал фиксирует, какие сущности
// на бэкенде успели создаться
type Record struct {
	ID              int64
	SessionID       string
	StaffID         string
	CourtID         int64
	SlotID          int64
	ClientID        *int64
	ServiceRecordID *int64
	ReservationID   *int64
	PaymentID       *int64
	TotalPrice      float64
	PaymentMethod   string
	Outcome         string
	FailedStep      *string
	ErrorMessage    *string
	CreatedAt       time.Time
}

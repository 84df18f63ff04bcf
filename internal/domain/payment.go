package domain

import "time"

// PaymentMethod способ оплаты (ровно два поддерживаемых)
type PaymentMethod string

const (
	// MethodMercadoPago онлайн-оплата через шлюз, списание сразу
	MethodMercadoPago PaymentMethod = "mercado_pago"
	// MethodCash оплата наличными при посещении
	MethodCash PaymentMethod = "efectivo"
)

// IsValid returns true if the method is one of the supported ones
func (m PaymentMethod) IsValid() bool {
	return m == MethodMercadoPago || m == MethodCash
}

// Label returns the human-readable method name used on receipts
func (m PaymentMethod) Label() string {
	switch m {
	case MethodMercadoPago:
		return "Mercado Pago"
	case MethodCash:
		return "Efectivo (Pagado)"
	default:
		return string(m)
	}
}

// PaymentStatus статус транзакции платежа
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pendiente"
	PaymentStatusCompleted PaymentStatus = "completado"
)

// Payment представляет запись платежа, привязанную к резервации
type Payment struct {
	ID            int64
	ClientID      int64
	ReservationID int64
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus
	PaymentDate   *time.Time
}

// PaymentStatusForMethod определяет статус платежа по способу оплаты
// Чистое решение без I/O: онлайн-оплата считается завершённой с датой "сегодня",
// оплата при посещении остаётся pending без даты
func PaymentStatusForMethod(method PaymentMethod, now time.Time) (PaymentStatus, *time.Time) {
	if method == MethodMercadoPago {
		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return PaymentStatusCompleted, &date
	}
	return PaymentStatusPending, nil
}

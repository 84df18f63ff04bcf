package paymentservice

// CreatePaymentRequest запрос на регистрацию платежа
type CreatePaymentRequest struct {
	ClientID      int64   `json:"id_usuario"`
	ReservationID int64   `json:"id_reserva"`
	Amount        float64 `json:"monto"`
	Method        string  `json:"metodo"`
	Status        string  `json:"estado_transaccion"`
	PaymentDate   *string `json:"fecha_pago,omitempty"` // YYYY-MM-DD
}

// Payment созданный платёж
type Payment struct {
	ID     int64  `json:"id_pago"`
	Status string `json:"estado_transaccion"`
}

// ErrorResponse модель ошибки от сервиса платежей
type ErrorResponse struct {
	Detail string `json:"detail"`
}

package mailservice

// SendReceiptRequest запрос на отправку квитанции об оплате
// Поля совпадают с wire-форматом сервиса рассылки
type SendReceiptRequest struct {
	Recipient     string  `json:"email_contacto"`
	ReservationID int64   `json:"id_reserva"`
	Date          string  `json:"dia_reserva"` // YYYY-MM-DD
	TimeWindow    string  `json:"hora_turno"`  // "HH:MM - HH:MM"
	CourtName     string  `json:"nombre_cancha"`
	Amount        float64 `json:"monto_reserva"`
	MethodLabel   string  `json:"metodo_pago"`
	ClientName    string  `json:"nombre_usuario"`
}

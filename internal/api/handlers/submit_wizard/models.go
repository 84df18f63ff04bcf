package submit_wizard

// SubmitRequest HTTP request model
// TournamentID опционально привязывает бронь к турниру комплекса
type SubmitRequest struct {
	PaymentMethod string `json:"paymentMethod"` // "mercado_pago" | "efectivo"
	TournamentID  *int64 `json:"tournamentId,omitempty"`
}

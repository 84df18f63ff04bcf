package reservationservice

import "github.com/estadia/BookingWizardService/internal/domain"

// CreateServiceRecordRequest запрос на создание записи дополнительных услуг
// Поля совпадают с wire-форматом бэкенда
type CreateServiceRecordRequest struct {
	GrillGuests    int  `json:"cant_personas_asado"`
	Referee        bool `json:"arbitro"`
	MatchRecording bool `json:"partido_grabado"`
	Jerseys        bool `json:"pecheras"`
	PaddleRentals  int  `json:"cant_paletas"`
}

// NewCreateServiceRecordRequest собирает запрос из доменного выбора услуг
func NewCreateServiceRecordRequest(sel domain.AddOnSelection) *CreateServiceRecordRequest {
	return &CreateServiceRecordRequest{
		GrillGuests:    sel.GrillGuests,
		Referee:        sel.Referee,
		MatchRecording: sel.MatchRecording,
		Jerseys:        sel.Jerseys,
		PaddleRentals:  sel.PaddleRentals,
	}
}

// ServiceRecord созданная запись дополнительных услуг
type ServiceRecord struct {
	ID int64 `json:"id_servicio"`
}

// CreateReservationRequest запрос на создание резервации
type CreateReservationRequest struct {
	CourtID         int64   `json:"id_cancha"`
	SlotID          int64   `json:"id_turno"`
	ClientID        int64   `json:"id_cliente"`
	ServiceRecordID *int64  `json:"id_servicio,omitempty"`
	TournamentID    *int64  `json:"id_torneo,omitempty"`
	TotalPrice      float64 `json:"precio_total"`
	PaymentMethod   string  `json:"metodo_pago"`
	Origin          string  `json:"origen"`
}

// Reservation созданная резервация
type Reservation struct {
	ID         int64   `json:"id_reserva"`
	Status     string  `json:"estado"`
	TotalPrice float64 `json:"precio_total"`
}

// CreateReservationResponse ответ бэкенда на создание резервации
type CreateReservationResponse struct {
	Message     string      `json:"mensaje"`
	Reservation Reservation `json:"reserva"`
}

// ErrorResponse модель ошибки от сервиса резерваций
type ErrorResponse struct {
	Detail string `json:"detail"`
}

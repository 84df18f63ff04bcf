package select_services

import "github.com/estadia/BookingWizardService/internal/domain"

// SelectServicesRequest HTTP request model
// Услуга, недоступная для типа площадки, отклоняет запрос целиком;
// отрицательные количества приводятся к нулю на стороне черновика
type SelectServicesRequest struct {
	Referee        bool `json:"referee"`
	MatchRecording bool `json:"matchRecording"`
	Jerseys        bool `json:"jerseys"`
	GrillGuests    int  `json:"grillGuests"`
	PaddleRentals  int  `json:"paddleRentals"`
}

// ToSelection конвертирует запрос в доменный выбор услуг
func (r *SelectServicesRequest) ToSelection() domain.AddOnSelection {
	return domain.AddOnSelection{
		Referee:        r.Referee,
		MatchRecording: r.MatchRecording,
		Jerseys:        r.Jerseys,
		GrillGuests:    r.GrillGuests,
		PaddleRentals:  r.PaddleRentals,
	}
}

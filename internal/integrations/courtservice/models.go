package courtservice

import (
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/pkg/types"
)

// Court модель площадки из сервиса каталога
type Court struct {
	ID        int64   `json:"id_cancha"`
	Name      string  `json:"nombre"`
	Type      string  `json:"tipo"`
	BasePrice float64 `json:"precio_base"`
	Roofed    bool    `json:"techada"`
	Lit       bool    `json:"iluminacion"`
	Status    string  `json:"estado"`
}

// ToDomain конвертирует модель в доменную
func (c *Court) ToDomain() *domain.Court {
	return &domain.Court{
		ID:        c.ID,
		Name:      c.Name,
		Type:      domain.CourtType(c.Type),
		BasePrice: c.BasePrice,
		Roofed:    c.Roofed,
		Lit:       c.Lit,
		Status:    domain.CourtStatus(c.Status),
	}
}

// Slot модель временного слота из сервиса каталога
type Slot struct {
	ID        int64            `json:"id_turno"`
	CourtID   int64            `json:"id_cancha"`
	Date      string           `json:"fecha"` // YYYY-MM-DD
	StartTime types.TimeString `json:"hora_inicio"`
	EndTime   types.TimeString `json:"hora_fin"`
	Status    string           `json:"estado"`
}

// ToDomain конвертирует модель в доменную
// Некорректная дата считается ошибкой данных и приводит к нулевой дате
func (s *Slot) ToDomain() *domain.Slot {
	date, _ := time.Parse(domain.DateFormat, s.Date)
	return &domain.Slot{
		ID:        s.ID,
		CourtID:   s.CourtID,
		Date:      date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    domain.SlotStatus(s.Status),
	}
}

// ErrorResponse модель ошибки от сервиса каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

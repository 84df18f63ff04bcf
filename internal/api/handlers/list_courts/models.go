package list_courts

import (
	"github.com/estadia/BookingWizardService/internal/integrations/courtservice"
)

// CourtsResponse HTTP response model
type CourtsResponse struct {
	Courts []Court `json:"courts"`
}

// Court модель площадки
type Court struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	BasePrice float64 `json:"basePrice"`
	Roofed    bool    `json:"roofed"`
	Lit       bool    `json:"lit"`
}

// FromCatalogue конвертирует выдачу каталога в HTTP response,
// отбрасывая неактивные площадки
func FromCatalogue(courts []courtservice.Court) *CourtsResponse {
	result := make([]Court, 0, len(courts))
	for i := range courts {
		court := courts[i].ToDomain()
		if !court.IsActive() {
			continue
		}
		result = append(result, Court{
			ID:        court.ID,
			Name:      court.Name,
			Type:      string(court.Type),
			BasePrice: court.BasePrice,
			Roofed:    court.Roofed,
			Lit:       court.Lit,
		})
	}
	return &CourtsResponse{Courts: result}
}

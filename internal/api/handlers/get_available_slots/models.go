package get_available_slots

import (
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
	getAvailableSlots "github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CourtID   int64           `json:"courtId"`
	CourtName string          `json:"courtName"`
	CourtType string          `json:"courtType"`
	BasePrice float64         `json:"basePrice"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		CourtID:   resp.Court.ID,
		CourtName: resp.Court.Name,
		CourtType: string(resp.Court.Type),
		BasePrice: resp.Court.BasePrice,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
// Дата опциональна: без неё возвращаются слоты на все даты
func ToUseCaseRequest(courtID int64, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{CourtID: courtID}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

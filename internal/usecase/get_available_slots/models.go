package get_available_slots

import (
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
)

// Request модель запроса на получение доступных слотов площадки
type Request struct {
	CourtID int64      // ID площадки
	Date    *time.Time // Фильтр по дате (опционально; nil - все будущие даты)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Court *domain.Court  // Площадка, для которой запрашивались слоты
	Slots []*domain.Slot // Доступные слоты, отсортированные по (дата, время начала)
}

package get_available_slots

import (
	"sort"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/integrations/courtservice"
)

// filterAvailable оставляет только слоты запрошенной площадки со статусом
// "disponible". Занятые и отменённые слоты не показываются оператору вовсе;
// слоты чужой площадки отбрасываются - CourtService фильтрует по id_cancha
// сам, но его выдаче здесь не доверяем
func filterAvailable(raw []courtservice.Slot, courtID int64) []*domain.Slot {
	result := make([]*domain.Slot, 0, len(raw))
	for i := range raw {
		slot := raw[i].ToDomain()
		if slot.CourtID != courtID {
			continue
		}
		if !slot.IsAvailable() {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// sortSlots упорядочивает слоты по (дата, время начала)
// CourtService не гарантирует порядок выдачи, поэтому сортируем на своей стороне
func sortSlots(slots []*domain.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}

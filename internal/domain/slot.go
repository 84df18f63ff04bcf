package domain

import (
	"time"

	"github.com/estadia/BookingWizardService/pkg/types"
)

// SlotStatus статус временного слота
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "disponible"
	SlotStatusReserved  SlotStatus = "reservado"
	SlotStatusCancelled SlotStatus = "cancelado"
)

// Slot represents a bookable time window on a specific court and date
// Жизненный цикл слота управляется бэкендом: перевод в "reservado" происходит
// на стороне бэкенда как побочный эффект успешного создания резервации
type Slot struct {
	ID        int64
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
}

// IsAvailable returns true if the slot can be selected for booking
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// TimeWindow возвращает окно слота в формате "HH:MM - HH:MM" (для квитанции)
func (s *Slot) TimeWindow() string {
	return s.StartTime.String() + " - " + s.EndTime.String()
}

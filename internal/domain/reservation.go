package domain

// ReservationStatus статус резервации
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pendiente"
	ReservationStatusConfirmed ReservationStatus = "confirmada"
	ReservationStatusCancelled ReservationStatus = "cancelada"
)

// ReservationOrigin источник создания резервации
type ReservationOrigin string

const (
	// OriginBackOffice резервация создана персоналом через мастер бронирования
	OriginBackOffice ReservationOrigin = "back_office"
)

// Reservation представляет персистентную запись бронирования на бэкенде
// Создаётся ровно один раз за успешную отправку мастера; итоговая цена
// фиксируется на момент отправки и далее не пересчитывается
type Reservation struct {
	ID              int64
	CourtID         int64
	SlotID          int64
	ClientID        int64
	ServiceRecordID *int64
	TournamentID    *int64
	TotalPrice      float64
	Status          ReservationStatus
	Origin          ReservationOrigin
}

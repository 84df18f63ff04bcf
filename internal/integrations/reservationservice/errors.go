package reservationservice

import "errors"

var (
	// ErrSlotConflict возвращается, когда слот уже занят на момент создания резервации
	// Отличимая ошибка гонки: две сессии прошли клиентскую валидацию на один слот,
	// бэкенд принял только первую
	ErrSlotConflict = errors.New("reservationservice client: slot is no longer available")

	// ErrReservationRejected возвращается, когда бэкенд отклонил резервацию по бизнес-правилу
	ErrReservationRejected = errors.New("reservationservice client: reservation rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")
)

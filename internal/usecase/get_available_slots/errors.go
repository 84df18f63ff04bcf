package get_available_slots

import "errors"

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("court not found")

	// ErrCourtInactive возвращается, когда площадка выведена из эксплуатации
	ErrCourtInactive = errors.New("court is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

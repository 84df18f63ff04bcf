package courtservice

import "errors"

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("courtservice client: court not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("courtservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("courtservice client: invalid response")
)

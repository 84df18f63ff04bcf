package clientservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент с таким DNI не найден
	ErrClientNotFound = errors.New("clientservice client: client not found")

	// ErrDuplicateDNI возвращается при попытке создать клиента с уже занятым DNI
	ErrDuplicateDNI = errors.New("clientservice client: dni already registered")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice client: invalid response")
)

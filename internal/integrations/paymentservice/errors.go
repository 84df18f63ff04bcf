package paymentservice

import "errors"

var (
	// ErrPaymentRejected возвращается, когда бэкенд отклонил регистрацию платежа
	ErrPaymentRejected = errors.New("paymentservice client: payment rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)

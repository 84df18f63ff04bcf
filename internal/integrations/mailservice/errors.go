package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда сервис не смог отправить письмо
	ErrSendFailed = errors.New("mailservice client: failed to send receipt")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")
)

package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена или истекла
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrInvalidTransition возвращается при недопустимом переходе состояния
	ErrInvalidTransition = errors.New("wizard: invalid state transition")

	// ErrCannotCancel возвращается при попытке отменить сессию после начала отправки
	ErrCannotCancel = errors.New("wizard: session cannot be cancelled")

	// ErrSlotUnavailable возвращается, когда выбранный слот отсутствует
	// среди доступных слотов площадки
	ErrSlotUnavailable = errors.New("wizard: slot is not available")

	// ErrIneligibleAddOn возвращается, когда выбрана услуга, недоступная
	// для типа площадки в черновике
	ErrIneligibleAddOn = errors.New("wizard: add-on is not available for the court type")

	// ErrInvalidPaymentMethod возвращается при неподдерживаемом способе оплаты
	ErrInvalidPaymentMethod = errors.New("wizard: invalid payment method")
)

package resolve_client

import "github.com/estadia/BookingWizardService/internal/domain"

// Request модель запроса на поиск клиента по DNI
type Request struct {
	DNI string // Номер документа (только цифры)
}

// Response модель ответа поиска клиента
// Если клиент не найден, Client содержит заготовку с предзаполненным DNI
// для дальнейшей регистрации
type Response struct {
	Found  bool
	Client *domain.Client
}

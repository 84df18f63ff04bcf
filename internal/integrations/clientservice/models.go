package clientservice

import "github.com/estadia/BookingWizardService/internal/domain"

// User модель клиента из сервиса клиентов (usuario)
type User struct {
	ID         int64  `json:"id_usuario"`
	DNI        string `json:"dni"`
	GivenName  string `json:"nombre"`
	FamilyName string `json:"apellido"`
	Phone      string `json:"telefono"`
	Email      string `json:"email"`
	Status     string `json:"estado"`
}

// ToDomain конвертирует модель в доменную
func (u *User) ToDomain() *domain.Client {
	return &domain.Client{
		ID:         u.ID,
		DNI:        u.DNI,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
		Phone:      u.Phone,
		Email:      u.Email,
		Status:     domain.ClientStatus(u.Status),
	}
}

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	DNI        string `json:"dni"`
	GivenName  string `json:"nombre"`
	FamilyName string `json:"apellido"`
	Phone      string `json:"telefono,omitempty"`
	Email      string `json:"email"`
}

// ErrorResponse модель ошибки от сервиса клиентов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

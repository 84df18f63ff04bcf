package set_client

import "github.com/estadia/BookingWizardService/internal/domain"

// SetClientRequest HTTP request model
// Клиент с id > 0 считается существующим и принимается без правок профиля;
// клиент без id регистрируется на бэкенде при отправке брони
type SetClientRequest struct {
	ID         int64  `json:"id,omitempty"`
	DNI        string `json:"dni"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// ToDomain конвертирует запрос в доменного клиента
func (r *SetClientRequest) ToDomain() (*domain.Client, bool) {
	client := &domain.Client{
		ID:         r.ID,
		DNI:        r.DNI,
		GivenName:  r.GivenName,
		FamilyName: r.FamilyName,
		Phone:      r.Phone,
		Email:      r.Email,
		Status:     domain.ClientStatusActive,
	}
	return client, !client.IsPersisted()
}

package resolve_client

import (
	resolveClient "github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
)

// ResolveClientRequest HTTP request model
type ResolveClientRequest struct {
	DNI string `json:"dni"`
}

// ResolveClientResponse HTTP response model
// При found=false client содержит заготовку с предзаполненным DNI
type ResolveClientResponse struct {
	Found  bool   `json:"found"`
	Client Client `json:"client"`
}

// Client модель клиента
type Client struct {
	ID         int64  `json:"id,omitempty"`
	DNI        string `json:"dni"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveClient.Response) *ResolveClientResponse {
	return &ResolveClientResponse{
		Found: resp.Found,
		Client: Client{
			ID:         resp.Client.ID,
			DNI:        resp.Client.DNI,
			GivenName:  resp.Client.GivenName,
			FamilyName: resp.Client.FamilyName,
			Phone:      resp.Client.Phone,
			Email:      resp.Client.Email,
		},
	}
}

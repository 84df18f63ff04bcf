package resolve_client

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/estadia/BookingWizardService/internal/domain"
)

var (
	dniRegexp   = regexp.MustCompile(`^\d{6,10}$`)
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^[\d\s\-+]+$`)
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DNI) == "" {
		return fmt.Errorf("%w: dni is required", ErrInvalidInput)
	}

	if !dniRegexp.MatchString(req.DNI) {
		return fmt.Errorf("%w: dni must contain 6-10 digits", ErrInvalidInput)
	}

	return nil
}

// ValidateNewClient проверяет данные клиента, введённые оператором вручную
// Используется на шаге идентификации перед сохранением данных в черновик
func ValidateNewClient(client *domain.Client) error {
	if client == nil {
		return fmt.Errorf("%w: client is required", ErrInvalidClientData)
	}

	if !dniRegexp.MatchString(client.DNI) {
		return fmt.Errorf("%w: dni must contain 6-10 digits", ErrInvalidClientData)
	}

	if strings.TrimSpace(client.GivenName) == "" {
		return fmt.Errorf("%w: given name is required", ErrInvalidClientData)
	}

	if strings.TrimSpace(client.FamilyName) == "" {
		return fmt.Errorf("%w: family name is required", ErrInvalidClientData)
	}

	if strings.TrimSpace(client.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidClientData)
	}

	if !emailRegexp.MatchString(client.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidClientData)
	}

	// Телефон опционален, но если указан - только цифры, пробелы, дефисы и плюс
	if client.Phone != "" && !phoneRegexp.MatchString(client.Phone) {
		return fmt.Errorf("%w: phone format is invalid", ErrInvalidClientData)
	}

	return nil
}

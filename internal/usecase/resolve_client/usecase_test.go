package resolve_client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/integrations/clientservice"
)

type fakeClientClient struct {
	user *clientservice.User
	err  error
}

func (f *fakeClientClient) FindByDNI(_ context.Context, _ string) (*clientservice.User, error) {
	return f.user, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute_Found(t *testing.T) {
	client := &fakeClientClient{
		user: &clientservice.User{
			ID:         7,
			DNI:        "30111222",
			GivenName:  "Juan",
			FamilyName: "Pérez",
			Email:      "juan@example.com",
			Status:     "activo",
		},
	}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	assert.Equal(t, int64(7), resp.Client.ID)
	assert.Equal(t, "Juan Pérez", resp.Client.FullName())
	assert.True(t, resp.Client.IsPersisted())
}

func TestUseCase_Execute_NotFoundProducesTemplate(t *testing.T) {
	client := &fakeClientClient{err: clientservice.ErrClientNotFound}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.NoError(t, err)

	assert.False(t, resp.Found)
	require.NotNil(t, resp.Client)
	assert.Equal(t, "30111222", resp.Client.DNI)
	assert.False(t, resp.Client.IsPersisted())
	assert.Empty(t, resp.Client.GivenName)
	assert.Empty(t, resp.Client.Email)
}

func TestUseCase_Execute_LookupFailureDegradesToNotFound(t *testing.T) {
	// Сбой сервиса клиентов не блокирует мастер: оператор вводит
	// данные вручную
	client := &fakeClientClient{err: errors.New("connection refused")}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.NoError(t, err)

	assert.False(t, resp.Found)
	assert.Equal(t, "30111222", resp.Client.DNI)
}

func TestUseCase_Execute_InvalidDNI(t *testing.T) {
	uc := NewUseCase(&fakeClientClient{}, nopLogger{})

	for _, dni := range []string{"", "  ", "abc", "12345", "123456789012", "30.111.222"} {
		_, err := uc.Execute(context.Background(), &Request{DNI: dni})
		assert.ErrorIs(t, err, ErrInvalidInput, "dni=%q", dni)
	}
}

func TestValidateNewClient(t *testing.T) {
	valid := func() *domain.Client {
		return &domain.Client{
			DNI:        "30111222",
			GivenName:  "Ana",
			FamilyName: "García",
			Phone:      "+54 11 5555-1234",
			Email:      "ana@example.com",
		}
	}

	t.Run("valid client passes", func(t *testing.T) {
		require.NoError(t, ValidateNewClient(valid()))
	})

	t.Run("phone is optional", func(t *testing.T) {
		c := valid()
		c.Phone = ""
		require.NoError(t, ValidateNewClient(c))
	})

	tests := []struct {
		name    string
		mutate  func(*domain.Client)
		message string
	}{
		{"nil client", nil, "client is required"},
		{"missing given name", func(c *domain.Client) { c.GivenName = "  " }, "given name is required"},
		{"missing family name", func(c *domain.Client) { c.FamilyName = "" }, "family name is required"},
		{"missing email", func(c *domain.Client) { c.Email = "" }, "email is required"},
		{"malformed email", func(c *domain.Client) { c.Email = "ana@example" }, "email format is invalid"},
		{"email with spaces", func(c *domain.Client) { c.Email = "ana maria@example.com" }, "email format is invalid"},
		{"phone with letters", func(c *domain.Client) { c.Phone = "call me" }, "phone format is invalid"},
		{"bad dni", func(c *domain.Client) { c.DNI = "123" }, "dni must contain 6-10 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var client *domain.Client
			if tt.mutate != nil {
				client = valid()
				tt.mutate(client)
			}

			err := ValidateNewClient(client)
			require.ErrorIs(t, err, ErrInvalidClientData)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

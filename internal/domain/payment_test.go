package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusForMethod(t *testing.T) {
	now := time.Date(2025, 11, 1, 17, 42, 13, 0, time.UTC)

	t.Run("mercado pago completes immediately with today's date", func(t *testing.T) {
		status, date := PaymentStatusForMethod(MethodMercadoPago, now)

		assert.Equal(t, PaymentStatusCompleted, status)
		require.NotNil(t, date)
		assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("cash stays pending without a date", func(t *testing.T) {
		status, date := PaymentStatusForMethod(MethodCash, now)

		assert.Equal(t, PaymentStatusPending, status)
		assert.Nil(t, date)
	})
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, MethodMercadoPago.IsValid())
	assert.True(t, MethodCash.IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestPaymentMethod_Label(t *testing.T) {
	assert.Equal(t, "Mercado Pago", MethodMercadoPago.Label())
	assert.Equal(t, "Efectivo (Pagado)", MethodCash.Label())
}

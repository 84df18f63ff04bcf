package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
)

var testNow = time.Date(2025, 11, 1, 17, 0, 0, 0, time.UTC)

func wizardTestCourt() *domain.Court {
	return &domain.Court{
		ID:        1,
		Name:      "Cancha 1",
		Type:      domain.CourtTypeFutbol,
		BasePrice: 5000,
		Status:    domain.CourtStatusAvailable,
	}
}

func wizardTestSlot() *domain.Slot {
	return &domain.Slot{
		ID:        10,
		CourtID:   1,
		Date:      time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "19:00",
		Status:    domain.SlotStatusAvailable,
	}
}

func wizardTestClient() *domain.Client {
	return &domain.Client{
		ID:         7,
		DNI:        "30111222",
		GivenName:  "Juan",
		FamilyName: "Pérez",
		Email:      "juan@example.com",
		Status:     domain.ClientStatusActive,
	}
}

// sessionAt прогоняет свежую сессию вперёд до нужного состояния
func sessionAt(t *testing.T, target State) *Session {
	t.Helper()

	s := newSession("sid", "staff-1", testNow)
	if target == StateSelectSlot {
		return s
	}

	require.NoError(t, s.SelectSlot(wizardTestCourt(), wizardTestSlot(), testNow))
	if target == StateSelectServices {
		return s
	}

	require.NoError(t, s.SetServices(domain.AddOnSelection{Referee: true}, testNow))
	if target == StateIdentifyClient {
		return s
	}

	require.NoError(t, s.SetClient(wizardTestClient(), false, testNow))
	if target == StateReview {
		return s
	}

	_, err := s.BeginSubmit(domain.MethodCash, nil, testNow)
	require.NoError(t, err)
	if target == StateSubmitting {
		return s
	}

	t.Fatalf("unsupported target state %q", target)
	return nil
}

func TestSession_HappyPath(t *testing.T) {
	s := newSession("sid", "staff-1", testNow)
	assert.Equal(t, StateSelectSlot, s.Snapshot().State)

	require.NoError(t, s.SelectSlot(wizardTestCourt(), wizardTestSlot(), testNow))
	assert.Equal(t, StateSelectServices, s.Snapshot().State)

	require.NoError(t, s.SetServices(domain.AddOnSelection{Referee: true, GrillGuests: 2}, testNow))
	assert.Equal(t, StateIdentifyClient, s.Snapshot().State)

	require.NoError(t, s.SetClient(wizardTestClient(), false, testNow))
	snap := s.Snapshot()
	assert.Equal(t, StateReview, snap.State)
	assert.Equal(t, 5000.0, snap.BasePrice)
	assert.Equal(t, 3000.0, snap.AddOnsCost)
	assert.Equal(t, 8000.0, snap.Total)

	draft, err := s.BeginSubmit(domain.MethodMercadoPago, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.MethodMercadoPago, draft.PaymentMethod)
	assert.Nil(t, draft.TournamentID)
	assert.Equal(t, StateSubmitting, s.Snapshot().State)

	s.CompleteSubmit(&submit_booking.Response{Success: true, ReservationID: 100}, nil, testNow)
	snap = s.Snapshot()
	assert.Equal(t, StateDoneSuccess, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, int64(100), snap.Result.ReservationID)
	assert.Nil(t, snap.Failure)
}

func TestSession_SelectSlot_Guards(t *testing.T) {
	t.Run("wrong state", func(t *testing.T) {
		s := sessionAt(t, StateReview)
		err := s.SelectSlot(wizardTestCourt(), wizardTestSlot(), testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("slot from another court", func(t *testing.T) {
		s := newSession("sid", "staff-1", testNow)
		foreign := wizardTestSlot()
		foreign.CourtID = 99
		err := s.SelectSlot(wizardTestCourt(), foreign, testNow)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("reserved slot", func(t *testing.T) {
		s := newSession("sid", "staff-1", testNow)
		reserved := wizardTestSlot()
		reserved.Status = domain.SlotStatusReserved
		err := s.SelectSlot(wizardTestCourt(), reserved, testNow)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})
}

func TestSession_SetServices_RejectsIneligibleAddOn(t *testing.T) {
	// Палетки недоступны на футбольной площадке: запрос отклоняется целиком,
	// а не вычищается молча
	s := sessionAt(t, StateSelectServices)

	err := s.SetServices(domain.AddOnSelection{PaddleRentals: 3}, testNow)
	require.ErrorIs(t, err, ErrIneligibleAddOn)

	snap := s.Snapshot()
	assert.Equal(t, StateSelectServices, snap.State, "мастер не продвигается")
	assert.True(t, snap.Draft.AddOns.IsEmpty())
	assert.Equal(t, 5000.0, snap.Total)

	// Допустимый выбор после отказа проходит
	require.NoError(t, s.SetServices(domain.AddOnSelection{Referee: true}, testNow))
	assert.Equal(t, StateIdentifyClient, s.Snapshot().State)
}

func TestSession_SetClient_NewClientValidated(t *testing.T) {
	s := sessionAt(t, StateIdentifyClient)

	invalid := &domain.Client{DNI: "30111222", GivenName: "Ana"}
	err := s.SetClient(invalid, true, testNow)
	assert.ErrorIs(t, err, resolve_client.ErrInvalidClientData)
	assert.Equal(t, StateIdentifyClient, s.Snapshot().State, "невалидный клиент не продвигает мастер")

	valid := &domain.Client{
		DNI:        "30111222",
		GivenName:  "Ana",
		FamilyName: "García",
		Email:      "ana@example.com",
		Status:     domain.ClientStatusActive,
	}
	require.NoError(t, s.SetClient(valid, true, testNow))
	assert.Equal(t, StateReview, s.Snapshot().State)
}

func TestSession_SetClient_ExistingMustBePersisted(t *testing.T) {
	s := sessionAt(t, StateIdentifyClient)

	err := s.SetClient(&domain.Client{DNI: "30111222"}, false, testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_Back_DiscardsAddOns(t *testing.T) {
	s := sessionAt(t, StateSelectServices)
	require.NoError(t, s.SetServices(domain.AddOnSelection{Referee: true, GrillGuests: 4}, testNow))

	// identify_client -> select_services: услуги ещё на месте
	require.NoError(t, s.Back(testNow))
	snap := s.Snapshot()
	assert.Equal(t, StateSelectServices, snap.State)
	assert.True(t, snap.Draft.AddOns.Referee)

	// select_services -> select_slot: выбор услуг сбрасывается
	require.NoError(t, s.Back(testNow))
	snap = s.Snapshot()
	assert.Equal(t, StateSelectSlot, snap.State)
	assert.True(t, snap.Draft.AddOns.IsEmpty())
	assert.Equal(t, 0.0, snap.AddOnsCost)
}

func TestSession_Back_NotAllowedFromTerminalStates(t *testing.T) {
	t.Run("from first step", func(t *testing.T) {
		s := newSession("sid", "staff-1", testNow)
		assert.ErrorIs(t, s.Back(testNow), ErrInvalidTransition)
	})

	t.Run("from submitting", func(t *testing.T) {
		s := sessionAt(t, StateSubmitting)
		assert.ErrorIs(t, s.Back(testNow), ErrInvalidTransition)
	})

	t.Run("from done", func(t *testing.T) {
		s := sessionAt(t, StateSubmitting)
		s.CompleteSubmit(&submit_booking.Response{Success: true}, nil, testNow)
		assert.ErrorIs(t, s.Back(testNow), ErrInvalidTransition)
	})
}

func TestSession_BeginSubmit_Guards(t *testing.T) {
	t.Run("only from review", func(t *testing.T) {
		s := sessionAt(t, StateIdentifyClient)
		_, err := s.BeginSubmit(domain.MethodCash, nil, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("no resubmission after completion", func(t *testing.T) {
		s := sessionAt(t, StateSubmitting)
		s.CompleteSubmit(nil, errors.New("boom"), testNow)
		assert.Equal(t, StateDoneError, s.Snapshot().State)

		_, err := s.BeginSubmit(domain.MethodCash, nil, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		s := sessionAt(t, StateReview)
		_, err := s.BeginSubmit(domain.PaymentMethod("bitcoin"), nil, testNow)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
		assert.Equal(t, StateReview, s.Snapshot().State)
	})

	t.Run("tournament linkage recorded in draft", func(t *testing.T) {
		s := sessionAt(t, StateReview)
		tournamentID := int64(12)

		draft, err := s.BeginSubmit(domain.MethodCash, &tournamentID, testNow)
		require.NoError(t, err)
		require.NotNil(t, draft.TournamentID)
		assert.Equal(t, int64(12), *draft.TournamentID)
	})
}

func TestSession_CanCancel(t *testing.T) {
	assert.True(t, sessionAt(t, StateSelectSlot).CanCancel())
	assert.True(t, sessionAt(t, StateReview).CanCancel())
	assert.False(t, sessionAt(t, StateSubmitting).CanCancel())

	done := sessionAt(t, StateSubmitting)
	done.CompleteSubmit(&submit_booking.Response{Success: true}, nil, testNow)
	assert.False(t, done.CanCancel())
}

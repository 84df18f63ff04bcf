package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estadia/BookingWizardService/internal/integrations/courtservice"
)

type fakeCourtClient struct {
	court    *courtservice.Court
	courtErr error
	slots    []courtservice.Slot
	slotsErr error
}

func (f *fakeCourtClient) GetCourt(_ context.Context, _ int64) (*courtservice.Court, error) {
	return f.court, f.courtErr
}

func (f *fakeCourtClient) ListSlots(_ context.Context, _ int64, _ *time.Time) ([]courtservice.Slot, error) {
	return f.slots, f.slotsErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeCourt() *courtservice.Court {
	return &courtservice.Court{
		ID:        1,
		Name:      "Cancha 1",
		Type:      "futbol",
		BasePrice: 5000,
		Status:    "disponible",
	}
}

func TestUseCase_Execute_FiltersAndSorts(t *testing.T) {
	client := &fakeCourtClient{
		court: activeCourt(),
		slots: []courtservice.Slot{
			{ID: 3, CourtID: 1, Date: "2025-11-02", StartTime: "10:00", EndTime: "11:00", Status: "disponible"},
			{ID: 1, CourtID: 1, Date: "2025-11-01", StartTime: "19:00", EndTime: "20:00", Status: "disponible"},
			{ID: 4, CourtID: 1, Date: "2025-11-01", StartTime: "20:00", EndTime: "21:00", Status: "reservado"},
			{ID: 2, CourtID: 1, Date: "2025-11-01", StartTime: "18:00", EndTime: "19:00", Status: "disponible"},
			{ID: 5, CourtID: 1, Date: "2025-11-01", StartTime: "09:00", EndTime: "10:00", Status: "cancelado"},
		},
	}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3, "занятые и отменённые слоты отфильтрованы")

	var ids []int64
	for _, slot := range resp.Slots {
		ids = append(ids, slot.ID)
		assert.Equal(t, int64(1), slot.CourtID)
		assert.True(t, slot.IsAvailable())
	}
	assert.Equal(t, []int64{2, 1, 3}, ids, "сортировка по (дата, время начала)")

	assert.Equal(t, "Cancha 1", resp.Court.Name)
}

func TestUseCase_Execute_DropsForeignCourtSlots(t *testing.T) {
	// CourtService обязан фильтровать по id_cancha, но его выдаче не доверяем:
	// слот чужой площадки не должен дойти до оператора
	client := &fakeCourtClient{
		court: activeCourt(),
		slots: []courtservice.Slot{
			{ID: 1, CourtID: 1, Date: "2025-11-01", StartTime: "18:00", EndTime: "19:00", Status: "disponible"},
			{ID: 2, CourtID: 2, Date: "2025-11-01", StartTime: "19:00", EndTime: "20:00", Status: "disponible"},
		},
	}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
	assert.Equal(t, int64(1), resp.Slots[0].CourtID)
}

func TestUseCase_Execute_EmptyResultIsValid(t *testing.T) {
	client := &fakeCourtClient{court: activeCourt(), slots: nil}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1})
	require.NoError(t, err)
	require.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_CourtNotFound(t *testing.T) {
	client := &fakeCourtClient{courtErr: courtservice.ErrCourtNotFound}

	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 42})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUseCase_Execute_CourtInactive(t *testing.T) {
	inactive := activeCourt()
	inactive.Status = "inactiva"
	client := &fakeCourtClient{court: inactive}

	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCourtClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_SlotListingFailure(t *testing.T) {
	client := &fakeCourtClient{
		court:    activeCourt(),
		slotsErr: errors.New("connection refused"),
	}

	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func draftTestCourt() *Court {
	return &Court{
		ID:        1,
		Name:      "Cancha 1",
		Type:      CourtTypeFutbol,
		BasePrice: 5000,
		Status:    CourtStatusAvailable,
	}
}

func draftTestSlot() *Slot {
	return &Slot{
		ID:      10,
		CourtID: 1,
		Date:    time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		Status:  SlotStatusAvailable,
	}
}

func TestBookingDraft_Transitions(t *testing.T) {
	empty := BookingDraft{}

	withSlot := empty.WithCourtAndSlot(draftTestCourt(), draftTestSlot())
	assert.Nil(t, empty.Court, "прежний черновик не модифицируется")
	assert.True(t, withSlot.HasSlot())

	withAddOns := withSlot.WithAddOns(AddOnSelection{Referee: true, GrillGuests: 2})
	assert.True(t, withAddOns.AddOns.Referee)
	assert.False(t, withSlot.AddOns.Referee, "прежний черновик не модифицируется")
}

func TestBookingDraft_ChangingCourtResetsAddOns(t *testing.T) {
	draft := BookingDraft{}.
		WithCourtAndSlot(draftTestCourt(), draftTestSlot()).
		WithAddOns(AddOnSelection{Referee: true})

	otherCourt := &Court{ID: 2, Type: CourtTypePadel, BasePrice: 3000, Status: CourtStatusAvailable}
	otherSlot := &Slot{ID: 20, CourtID: 2, Status: SlotStatusAvailable}

	rechosen := draft.WithCourtAndSlot(otherCourt, otherSlot)

	assert.True(t, rechosen.AddOns.IsEmpty(), "смена площадки сбрасывает выбор услуг")
}

func TestBookingDraft_WithAddOnsSanitizesByCourtType(t *testing.T) {
	draft := BookingDraft{}.WithCourtAndSlot(draftTestCourt(), draftTestSlot())

	withAddOns := draft.WithAddOns(AddOnSelection{Referee: true, PaddleRentals: 3})

	assert.True(t, withAddOns.AddOns.Referee)
	assert.Equal(t, 0, withAddOns.AddOns.PaddleRentals, "paletas недоступны на футбольной площадке")
}

func TestBookingDraft_Total(t *testing.T) {
	draft := BookingDraft{}.
		WithCourtAndSlot(draftTestCourt(), draftTestSlot()).
		WithAddOns(AddOnSelection{Referee: true, GrillGuests: 2})

	assert.Equal(t, 5000.0, draft.BasePrice())
	assert.Equal(t, 3000.0, draft.AddOnsCost())
	assert.Equal(t, 8000.0, draft.Total())
}

func TestBookingDraft_TotalWithoutCourt(t *testing.T) {
	draft := BookingDraft{}

	assert.Equal(t, 0.0, draft.Total())
	assert.False(t, draft.HasSlot())
}

package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
	"github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
)

type fakeSlotsUC struct {
	resp *get_available_slots.Response
	err  error
}

func (f *fakeSlotsUC) Execute(_ context.Context, _ *get_available_slots.Request) (*get_available_slots.Response, error) {
	return f.resp, f.err
}

type fakeResolveUC struct {
	resp   *resolve_client.Response
	err    error
	called bool
}

func (f *fakeResolveUC) Execute(_ context.Context, _ *resolve_client.Request) (*resolve_client.Response, error) {
	f.called = true
	return f.resp, f.err
}

type fakeSubmitUC struct {
	resp    *submit_booking.Response
	err     error
	lastReq *submit_booking.Request
}

func (f *fakeSubmitUC) Execute(_ context.Context, req *submit_booking.Request) (*submit_booking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type controllerFixture struct {
	store     *Store
	slots     *fakeSlotsUC
	resolve   *fakeResolveUC
	submit    *fakeSubmitUC
	ctrl      *Controller
	sessionID string
}

func newControllerFixture() *controllerFixture {
	f := &controllerFixture{
		store: NewStore(30*time.Minute, nopLogger{}),
		slots: &fakeSlotsUC{
			resp: &get_available_slots.Response{
				Court: wizardTestCourt(),
				Slots: []*domain.Slot{wizardTestSlot()},
			},
		},
		resolve: &fakeResolveUC{},
		submit:  &fakeSubmitUC{resp: &submit_booking.Response{Success: true, ReservationID: 100, PaymentID: 200}},
	}
	f.ctrl = NewController(f.store, f.slots, f.resolve, f.submit, nopLogger{})
	f.sessionID = f.ctrl.Start("staff-1").ID
	return f
}

// advanceToReview доводит сессию фикстуры до шага подтверждения
func (f *controllerFixture) advanceToReview(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	_, err := f.ctrl.SelectSlot(ctx, f.sessionID, 1, 10)
	require.NoError(t, err)
	_, err = f.ctrl.SetServices(f.sessionID, domain.AddOnSelection{Referee: true})
	require.NoError(t, err)
	_, err = f.ctrl.SetClient(f.sessionID, wizardTestClient(), false)
	require.NoError(t, err)
}

func TestController_Start(t *testing.T) {
	f := newControllerFixture()

	snap, err := f.ctrl.Get(f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectSlot, snap.State)
	assert.Equal(t, "staff-1", snap.StaffID)
}

func TestController_SelectSlot_ValidatesAgainstAvailability(t *testing.T) {
	f := newControllerFixture()

	snap, err := f.ctrl.SelectSlot(context.Background(), f.sessionID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, StateSelectServices, snap.State)
	assert.Equal(t, int64(10), snap.Draft.Slot.ID)
	assert.Equal(t, 5000.0, snap.BasePrice)
}

func TestController_SelectSlot_UnknownSlotRejected(t *testing.T) {
	f := newControllerFixture()

	// Слот 99 отсутствует в свежей выдаче доступности
	_, err := f.ctrl.SelectSlot(context.Background(), f.sessionID, 1, 99)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	snap, err := f.ctrl.Get(f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectSlot, snap.State)
}

func TestController_SelectSlot_AvailabilityFailurePropagates(t *testing.T) {
	f := newControllerFixture()
	f.slots.resp = nil
	f.slots.err = get_available_slots.ErrCourtNotFound

	_, err := f.ctrl.SelectSlot(context.Background(), f.sessionID, 42, 10)
	assert.ErrorIs(t, err, get_available_slots.ErrCourtNotFound)
}

func TestController_ResolveClient_OnlyOnIdentifyStep(t *testing.T) {
	f := newControllerFixture()

	_, err := f.ctrl.ResolveClient(context.Background(), f.sessionID, "30111222")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, f.resolve.called)
}

func TestController_ResolveClient_DoesNotAdvanceSession(t *testing.T) {
	f := newControllerFixture()
	f.resolve.resp = &resolve_client.Response{Found: true, Client: wizardTestClient()}

	_, err := f.ctrl.SelectSlot(context.Background(), f.sessionID, 1, 10)
	require.NoError(t, err)
	_, err = f.ctrl.SetServices(f.sessionID, domain.AddOnSelection{})
	require.NoError(t, err)

	resp, err := f.ctrl.ResolveClient(context.Background(), f.sessionID, "30111222")
	require.NoError(t, err)
	assert.True(t, resp.Found)

	snap, err := f.ctrl.Get(f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, StateIdentifyClient, snap.State, "поиск клиента - чистый запрос")
}

func TestController_Submit_Success(t *testing.T) {
	f := newControllerFixture()
	f.advanceToReview(t)

	snap, err := f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodMercadoPago, nil)
	require.NoError(t, err)

	assert.Equal(t, StateDoneSuccess, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, int64(100), snap.Result.ReservationID)
	assert.Nil(t, snap.Failure)

	require.NotNil(t, f.submit.lastReq)
	assert.Equal(t, f.sessionID, f.submit.lastReq.SessionID)
	assert.Equal(t, "staff-1", f.submit.lastReq.StaffID)
	assert.Equal(t, domain.MethodMercadoPago, f.submit.lastReq.Draft.PaymentMethod)
}

func TestController_Submit_TournamentLinked(t *testing.T) {
	f := newControllerFixture()
	f.advanceToReview(t)
	tournamentID := int64(12)

	snap, err := f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodCash, &tournamentID)
	require.NoError(t, err)
	assert.Equal(t, StateDoneSuccess, snap.State)

	// Привязка к турниру доезжает до оркестратора через черновик
	require.NotNil(t, f.submit.lastReq)
	require.NotNil(t, f.submit.lastReq.Draft.TournamentID)
	assert.Equal(t, int64(12), *f.submit.lastReq.Draft.TournamentID)
}

func TestController_Submit_FailureKeptInSnapshot(t *testing.T) {
	f := newControllerFixture()
	f.advanceToReview(t)

	partial := &submit_booking.Response{FailedStep: submit_booking.StepReservation, ClientID: 31}
	f.submit.resp = partial
	f.submit.err = submit_booking.ErrSlotConflict

	// Сбой отправки - не ошибка вызова: снимок несёт исход для оператора
	snap, err := f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodCash, nil)
	require.NoError(t, err)

	assert.Equal(t, StateDoneError, snap.State)
	assert.ErrorIs(t, snap.Failure, submit_booking.ErrSlotConflict)
	require.NotNil(t, snap.Result)
	assert.Equal(t, int64(31), snap.Result.ClientID)
}

func TestController_Submit_NotFromReview(t *testing.T) {
	f := newControllerFixture()

	_, err := f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodCash, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, f.submit.lastReq, "конвейер отправки не запускается")
}

func TestController_Submit_NoResubmission(t *testing.T) {
	f := newControllerFixture()
	f.advanceToReview(t)

	_, err := f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodCash, nil)
	require.NoError(t, err)

	_, err = f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodCash, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestController_Cancel(t *testing.T) {
	f := newControllerFixture()

	require.NoError(t, f.ctrl.Cancel(f.sessionID))
	_, err := f.ctrl.Get(f.sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestController_Cancel_NotAfterSubmission(t *testing.T) {
	f := newControllerFixture()
	f.advanceToReview(t)

	_, err := f.ctrl.Submit(context.Background(), f.sessionID, domain.MethodCash, nil)
	require.NoError(t, err)

	err = f.ctrl.Cancel(f.sessionID)
	assert.ErrorIs(t, err, ErrCannotCancel)

	// Сессия остаётся читаемой до TTL-очистки
	snap, err := f.ctrl.Get(f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, StateDoneSuccess, snap.State)
}

func TestController_UnknownSession(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	_, err := f.ctrl.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.ctrl.SelectSlot(ctx, "missing", 1, 10)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.ctrl.Submit(ctx, "missing", domain.MethodCash, nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, f.ctrl.Cancel("missing"), ErrSessionNotFound)
}

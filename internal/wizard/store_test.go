package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estadia/BookingWizardService/internal/domain"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore(30*time.Minute, nopLogger{})

	session := store.Create("staff-1")
	snap := session.Snapshot()
	require.NotEmpty(t, snap.ID)
	assert.Equal(t, "staff-1", snap.StaffID)
	assert.Equal(t, StateSelectSlot, snap.State)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(snap.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	store.Delete(snap.ID)
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(snap.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := NewStore(30*time.Minute, nopLogger{})

	_, err := store.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SweepRemovesIdleSessions(t *testing.T) {
	clock := &fixedTime{now: testNow}
	store := NewStore(30*time.Minute, nopLogger{})
	store.timeProvider = clock

	stale := store.Create("staff-1")
	fresh := store.Create("staff-2")

	// Вторая сессия проявляет активность спустя 20 минут
	clock.now = testNow.Add(20 * time.Minute)
	require.NoError(t, fresh.SelectSlot(wizardTestCourt(), wizardTestSlot(), clock.now))

	// Через 35 минут от старта TTL первой сессии истёк
	clock.now = testNow.Add(35 * time.Minute)
	store.sweep()

	assert.Equal(t, 1, store.Len())
	_, err := store.Get(stale.id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(fresh.id)
	assert.NoError(t, err)
}

func TestStore_SweepSkipsSubmittingSessions(t *testing.T) {
	clock := &fixedTime{now: testNow}
	store := NewStore(30*time.Minute, nopLogger{})
	store.timeProvider = clock

	session := store.Create("staff-1")
	require.NoError(t, session.SelectSlot(wizardTestCourt(), wizardTestSlot(), clock.now))
	require.NoError(t, session.SetServices(domain.AddOnSelection{}, clock.now))
	require.NoError(t, session.SetClient(wizardTestClient(), false, clock.now))
	_, err := session.BeginSubmit(domain.MethodCash, nil, clock.now)
	require.NoError(t, err)

	// Сессия в отправке не удаляется независимо от возраста
	clock.now = testNow.Add(2 * time.Hour)
	store.sweep()

	assert.Equal(t, 1, store.Len())
}

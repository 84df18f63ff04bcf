package wizard

import (
	"fmt"
	"sync"
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
)

// Session сессия мастера бронирования
//
// Черновик хранится как неизменяемое значение: каждый переход подменяет
// его целиком под мьютексом, поэтому снимок сессии можно отдавать наружу
// без копирования вглубь
type Session struct {
	mu sync.Mutex

	id           string
	staffID      string
	state        State
	draft        domain.BookingDraft
	result       *submit_booking.Response
	failure      error
	createdAt    time.Time
	lastActivity time.Time
}

// Snapshot мгновенный снимок сессии для выдачи наружу
type Snapshot struct {
	ID         string
	StaffID    string
	State      State
	Draft      domain.BookingDraft
	Result     *submit_booking.Response
	Failure    error
	BasePrice  float64
	AddOnsCost float64
	Total      float64
	CreatedAt  time.Time
}

func newSession(id, staffID string, now time.Time) *Session {
	return &Session{
		id:           id,
		staffID:      staffID,
		state:        StateSelectSlot,
		createdAt:    now,
		lastActivity: now,
	}
}

// Snapshot возвращает текущий снимок сессии
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:         s.id,
		StaffID:    s.staffID,
		State:      s.state,
		Draft:      s.draft,
		Result:     s.result,
		Failure:    s.failure,
		BasePrice:  s.draft.BasePrice(),
		AddOnsCost: s.draft.AddOnsCost(),
		Total:      s.draft.Total(),
		CreatedAt:  s.createdAt,
	}
}

// SelectSlot фиксирует выбор площадки и слота и переводит мастер к выбору услуг
func (s *Session) SelectSlot(court *domain.Court, slot *domain.Slot, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelectSlot {
		return fmt.Errorf("%w: slot selection is not allowed in state %q", ErrInvalidTransition, s.state)
	}

	if court == nil || slot == nil || slot.CourtID != court.ID {
		return fmt.Errorf("%w: slot does not belong to the court", ErrSlotUnavailable)
	}
	if !slot.IsAvailable() {
		return fmt.Errorf("%w: slot id=%d", ErrSlotUnavailable, slot.ID)
	}

	s.draft = s.draft.WithCourtAndSlot(court, slot)
	s.state = StateSelectServices
	s.lastActivity = now
	return nil
}

// SetServices фиксирует выбор дополнительных услуг и переводит мастер
// к идентификации клиента. Все услуги опциональны, но услуга вне матрицы
// доступности типа площадки отклоняет запрос целиком: фронтенд не должен
// был её предлагать, молча вычищать такой выбор нельзя
func (s *Session) SetServices(sel domain.AddOnSelection, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelectServices {
		return fmt.Errorf("%w: service selection is not allowed in state %q", ErrInvalidTransition, s.state)
	}

	if ineligible := sel.Ineligible(s.draft.Court.Type); len(ineligible) > 0 {
		return fmt.Errorf("%w: %v", ErrIneligibleAddOn, ineligible)
	}

	s.draft = s.draft.WithAddOns(sel)
	s.state = StateIdentifyClient
	s.lastActivity = now
	return nil
}

// SetClient фиксирует клиента и переводит мастер к подтверждению
// Существующий клиент принимается как есть (его профиль здесь не редактируется),
// данные нового проходят полную валидацию
func (s *Session) SetClient(client *domain.Client, isNew bool, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdentifyClient {
		return fmt.Errorf("%w: client assignment is not allowed in state %q", ErrInvalidTransition, s.state)
	}

	if isNew {
		if err := resolve_client.ValidateNewClient(client); err != nil {
			return err
		}
	} else if client == nil || !client.IsPersisted() {
		return fmt.Errorf("%w: existing client must have an id", ErrInvalidTransition)
	}

	s.draft = s.draft.WithClient(client, isNew)
	s.state = StateReview
	s.lastActivity = now
	return nil
}

// Back выполняет обратный переход
// Возврат с шага выбора услуг сбрасывает выбранные услуги: их доступность
// зависит от типа площадки, которую пользователь собирается поменять
func (s *Session) Back(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.state.previous()
	if !ok {
		return fmt.Errorf("%w: cannot go back from state %q", ErrInvalidTransition, s.state)
	}

	if s.state == StateSelectServices {
		s.draft = s.draft.WithAddOns(domain.AddOnSelection{})
	}

	s.state = prev
	s.lastActivity = now
	return nil
}

// BeginSubmit переводит мастер в состояние отправки и возвращает
// финальный черновик для оркестратора. tournamentID опционален
// Повторная отправка из Submitting/Done невозможна: состояние уже не Review
func (s *Session) BeginSubmit(method domain.PaymentMethod, tournamentID *int64, now time.Time) (domain.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReview {
		return domain.BookingDraft{}, fmt.Errorf("%w: submission is not allowed in state %q", ErrInvalidTransition, s.state)
	}

	if !method.IsValid() {
		return domain.BookingDraft{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}

	s.draft = s.draft.WithPaymentMethod(method).WithTournament(tournamentID)
	s.state = StateSubmitting
	s.lastActivity = now
	return s.draft, nil
}

// CompleteSubmit фиксирует исход отправки
func (s *Session) CompleteSubmit(result *submit_booking.Response, err error, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.failure = err
	if err != nil {
		s.state = StateDoneError
	} else {
		s.state = StateDoneSuccess
	}
	s.lastActivity = now
}

// CanCancel сообщает, можно ли ещё отменить сессию
func (s *Session) CanCancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CanCancel()
}

// IdleSince возвращает время последней активности в сессии
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

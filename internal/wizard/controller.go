package wizard

import (
	"context"
	"fmt"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
	"github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	"github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
)

// Controller управляет прохождением мастера бронирования
//
// Контроллер владеет сессиями и проверяет переходы, а доменную работу
// делегирует use case'ам: доступность слотов, поиск клиента, отправку брони
type Controller struct {
	store        *Store
	slotsUC      AvailableSlotsUseCase
	resolveUC    ResolveClientUseCase
	submitUC     SubmitBookingUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewController создает новый контроллер мастера
func NewController(
	store *Store,
	slotsUC AvailableSlotsUseCase,
	resolveUC ResolveClientUseCase,
	submitUC SubmitBookingUseCase,
	logger Logger,
) *Controller {
	return &Controller{
		store:        store,
		slotsUC:      slotsUC,
		resolveUC:    resolveUC,
		submitUC:     submitUC,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start создает новую сессию мастера
func (c *Controller) Start(staffID string) Snapshot {
	session := c.store.Create(staffID)
	c.logger.Info("Wizard: session=%s started by staff=%s", session.id, staffID)
	return session.Snapshot()
}

// Get возвращает снимок сессии
func (c *Controller) Get(sessionID string) (Snapshot, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// SelectSlot проверяет выбранный слот по актуальной выдаче доступности
// и фиксирует его в сессии
func (c *Controller) SelectSlot(ctx context.Context, sessionID string, courtID, slotID int64) (Snapshot, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	// Слот принимается только из свежего списка доступных: этим же списком
	// пользуется оператор на экране выбора
	available, err := c.slotsUC.Execute(ctx, &get_available_slots.Request{CourtID: courtID})
	if err != nil {
		return Snapshot{}, err
	}

	slot := findSlot(available.Slots, slotID)
	if slot == nil {
		c.logger.Warn("Wizard: session=%s slot id=%d not available on court id=%d", sessionID, slotID, courtID)
		return Snapshot{}, fmt.Errorf("%w: slot id=%d", ErrSlotUnavailable, slotID)
	}

	if err := session.SelectSlot(available.Court, slot, c.timeProvider.Now()); err != nil {
		return Snapshot{}, err
	}

	c.logger.Info("Wizard: session=%s selected court=%d slot=%d", sessionID, courtID, slotID)
	return session.Snapshot(), nil
}

// SetServices фиксирует выбор дополнительных услуг
func (c *Controller) SetServices(sessionID string, sel domain.AddOnSelection) (Snapshot, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	if err := session.SetServices(sel, c.timeProvider.Now()); err != nil {
		return Snapshot{}, err
	}

	snapshot := session.Snapshot()
	c.logger.Info("Wizard: session=%s services set, total=%.2f", sessionID, snapshot.Total)
	return snapshot, nil
}

// ResolveClient ищет клиента по DNI, не меняя состояния сессии
// Сессия нужна только как проверка, что оператор находится на шаге
// идентификации
func (c *Controller) ResolveClient(ctx context.Context, sessionID, dni string) (*resolve_client.Response, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	if snapshot.State != StateIdentifyClient {
		return nil, fmt.Errorf("%w: client resolution is not allowed in state %q", ErrInvalidTransition, snapshot.State)
	}

	return c.resolveUC.Execute(ctx, &resolve_client.Request{DNI: dni})
}

// SetClient фиксирует клиента в сессии
func (c *Controller) SetClient(sessionID string, client *domain.Client, isNew bool) (Snapshot, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	if err := session.SetClient(client, isNew, c.timeProvider.Now()); err != nil {
		return Snapshot{}, err
	}

	c.logger.Info("Wizard: session=%s client set (new=%t)", sessionID, isNew)
	return session.Snapshot(), nil
}

// Back выполняет обратный переход
func (c *Controller) Back(sessionID string) (Snapshot, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	if err := session.Back(c.timeProvider.Now()); err != nil {
		return Snapshot{}, err
	}

	return session.Snapshot(), nil
}

// Submit подтверждает бронь и синхронно прогоняет конвейер отправки
// Необязательный tournamentID привязывает резервацию к турниру комплекса.
// Сессия остаётся в хранилище и в терминальном состоянии, чтобы оператор
// мог перечитать результат; её удалит TTL-очистка
func (c *Controller) Submit(ctx context.Context, sessionID string, method domain.PaymentMethod, tournamentID *int64) (Snapshot, error) {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	draft, err := session.BeginSubmit(method, tournamentID, c.timeProvider.Now())
	if err != nil {
		return Snapshot{}, err
	}

	result, submitErr := c.submitUC.Execute(ctx, &submit_booking.Request{
		SessionID: sessionID,
		StaffID:   session.staffID,
		Draft:     draft,
	})
	session.CompleteSubmit(result, submitErr, c.timeProvider.Now())

	if submitErr != nil {
		c.logger.Warn("Wizard: session=%s submission failed: %v", sessionID, submitErr)
	} else {
		c.logger.Info("Wizard: session=%s submission succeeded, reservation=%d", sessionID, result.ReservationID)
	}

	return session.Snapshot(), nil
}

// Cancel отменяет сессию и удаляет её из хранилища
func (c *Controller) Cancel(sessionID string) error {
	session, err := c.store.Get(sessionID)
	if err != nil {
		return err
	}

	if !session.CanCancel() {
		return ErrCannotCancel
	}

	c.store.Delete(sessionID)
	c.logger.Info("Wizard: session=%s cancelled", sessionID)
	return nil
}

// findSlot ищет слот по ID в списке доступных
func findSlot(slots []*domain.Slot, slotID int64) *domain.Slot {
	for _, slot := range slots {
		if slot.ID == slotID {
			return slot
		}
	}
	return nil
}

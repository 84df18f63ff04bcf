package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/infra/storage/submissionlog"
	clientClient "github.com/estadia/BookingWizardService/internal/integrations/clientservice"
	"github.com/estadia/BookingWizardService/internal/integrations/mailservice"
	"github.com/estadia/BookingWizardService/internal/integrations/paymentservice"
	reservationClient "github.com/estadia/BookingWizardService/internal/integrations/reservationservice"
	"github.com/estadia/BookingWizardService/pkg/ptr"
)

// UseCase use case отправки собранной брони на бэкенд
//
// Отправка - упорядоченный конвейер без отката: клиент, услуги, резервация,
// платёж, квитанция. Каждый следующий шаг зависит от ID, полученных на
// предыдущих, поэтому порядок фиксирован. Компенсирующих удалений нет:
// при сбое ответ перечисляет созданные сущности, а запись в журнале
// отправок даёт оператору материал для ручной сверки
type UseCase struct {
	clientClient      ClientServiceClient
	reservationClient ReservationServiceClient
	paymentClient     PaymentServiceClient
	mailClient        MailServiceClient
	submissionLog     SubmissionLogRepository
	gatewayDelay      time.Duration
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientClient ClientServiceClient,
	reservationClient ReservationServiceClient,
	paymentClient PaymentServiceClient,
	mailClient MailServiceClient,
	submissionLog SubmissionLogRepository,
	gatewayDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientClient:      clientClient,
		reservationClient: reservationClient,
		paymentClient:     paymentClient,
		mailClient:        mailClient,
		submissionLog:     submissionLog,
		gatewayDelay:      gatewayDelay,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute выполняет use case отправки брони
//
// При сбое шага возвращает и частично заполненный Response, и ошибку:
// вызывающему коду нужны оба - ошибка для статуса, Response для списка
// уже созданных сущностей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s, court=%d, slot=%d, method=%s, total=%.2f",
		req.SessionID, courtID(req), slotID(req), req.Draft.PaymentMethod, req.Draft.Total())

	// 1. Валидация собранного черновика
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	draft := req.Draft
	resp := &Response{TotalPrice: draft.Total()}

	// 2. Материализация клиента: существующий используется как есть,
	// новый регистрируется на бэкенде
	client, err := uc.materializeClient(ctx, draft)
	if err != nil {
		return uc.fail(ctx, req, resp, StepClient, err)
	}
	resp.ClientID = client.ID
	resp.ClientName = client.FullName()

	// 3. Запись дополнительных услуг - только если услуги реально выбраны
	if draft.AddOnsCost() > 0 {
		recordID, err := uc.reservationClient.CreateServiceRecord(ctx, reservationClient.NewCreateServiceRecordRequest(draft.AddOns))
		if err != nil {
			uc.logger.Error("SubmitBooking: service record creation failed: %v", err)
			return uc.fail(ctx, req, resp, StepServiceRecord, fmt.Errorf("%w: %v", ErrSubmissionFailed, err))
		}
		resp.ServiceRecordID = ptr.Ptr(recordID)
		uc.logger.Info("SubmitBooking: service record id=%d created", recordID)
	}

	// 4. Резервация. Конфликт слота - ожидаемый исход при параллельной
	// работе операторов, он транслируется в ErrSlotConflict
	reservation, err := uc.reservationClient.CreateReservation(ctx, &reservationClient.CreateReservationRequest{
		CourtID:         draft.Court.ID,
		SlotID:          draft.Slot.ID,
		ClientID:        client.ID,
		ServiceRecordID: resp.ServiceRecordID,
		TournamentID:    draft.TournamentID,
		TotalPrice:      draft.Total(),
		PaymentMethod:   string(draft.PaymentMethod),
		Origin:          string(domain.OriginBackOffice),
	})
	if err != nil {
		if errors.Is(err, reservationClient.ErrSlotConflict) {
			uc.logger.Warn("SubmitBooking: slot id=%d is no longer available", draft.Slot.ID)
			return uc.fail(ctx, req, resp, StepReservation, fmt.Errorf("%w: %v", ErrSlotConflict, err))
		}
		uc.logger.Error("SubmitBooking: reservation creation failed: %v", err)
		return uc.fail(ctx, req, resp, StepReservation, fmt.Errorf("%w: %v", ErrSubmissionFailed, err))
	}
	resp.ReservationID = reservation.ID
	uc.logger.Info("SubmitBooking: reservation id=%d created", reservation.ID)

	// 5. Статус платежа определяется способом оплаты: онлайн-оплата
	// завершена сразу, наличные остаются pending до визита
	status, paymentDate := domain.PaymentStatusForMethod(draft.PaymentMethod, uc.timeProvider.Now())
	resp.PaymentStatus = status
	resp.PaymentDate = paymentDate

	// 6. Регистрация платежа
	payment, err := uc.paymentClient.CreatePayment(ctx, &paymentservice.CreatePaymentRequest{
		ClientID:      client.ID,
		ReservationID: reservation.ID,
		Amount:        draft.Total(),
		Method:        string(draft.PaymentMethod),
		Status:        string(status),
		PaymentDate:   formatPaymentDate(paymentDate),
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: payment creation failed: %v", err)
		return uc.fail(ctx, req, resp, StepPayment, fmt.Errorf("%w: %v", ErrSubmissionFailed, err))
	}
	resp.PaymentID = payment.ID
	uc.logger.Info("SubmitBooking: payment id=%d created, status=%s", payment.ID, status)

	// 7. Для онлайн-оплаты: квитанция на email и ожидание подтверждения
	// шлюза. Оба шага не влияют на исход отправки - бронь уже создана
	if draft.PaymentMethod == domain.MethodMercadoPago && status == domain.PaymentStatusCompleted {
		resp.ReceiptSent = uc.sendReceipt(ctx, draft, client, reservation.ID)
		uc.confirmGateway(ctx)
	}

	resp.Success = true
	uc.writeSubmissionLog(ctx, req, resp, nil)

	uc.logger.Info("SubmitBooking: session=%s completed, reservation=%d, payment=%d",
		req.SessionID, resp.ReservationID, resp.PaymentID)

	return resp, nil
}

// materializeClient возвращает существующего клиента или регистрирует нового
// Если регистрация упёрлась в дубликат DNI (клиента успели создать в другом
// окне), деградируем до повторного поиска
func (uc *UseCase) materializeClient(ctx context.Context, draft domain.BookingDraft) (*domain.Client, error) {
	if draft.Client.IsPersisted() {
		return draft.Client, nil
	}

	created, err := uc.clientClient.CreateClient(ctx, &clientClient.CreateClientRequest{
		DNI:        draft.Client.DNI,
		GivenName:  draft.Client.GivenName,
		FamilyName: draft.Client.FamilyName,
		Phone:      draft.Client.Phone,
		Email:      draft.Client.Email,
	})
	if err == nil {
		uc.logger.Info("SubmitBooking: client id=%d registered for dni=%s", created.ID, draft.Client.DNI)
		return created.ToDomain(), nil
	}

	if errors.Is(err, clientClient.ErrDuplicateDNI) {
		uc.logger.Warn("SubmitBooking: dni=%s already registered, falling back to lookup", draft.Client.DNI)
		existing, lookupErr := uc.clientClient.FindByDNI(ctx, draft.Client.DNI)
		if lookupErr == nil {
			return existing.ToDomain(), nil
		}
		uc.logger.Error("SubmitBooking: duplicate dni lookup failed: %v", lookupErr)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, lookupErr)
	}

	uc.logger.Error("SubmitBooking: client registration failed: %v", err)
	return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
}

// confirmGateway имитирует ожидание подтверждения платёжного шлюза
// Реальной интеграции со шлюзом нет, фиксированная задержка воспроизводит
// её темп для оператора
func (uc *UseCase) confirmGateway(ctx context.Context) {
	if uc.gatewayDelay <= 0 {
		return
	}

	timer := time.NewTimer(uc.gatewayDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// sendReceipt отправляет квитанцию на email клиента, best-effort
func (uc *UseCase) sendReceipt(ctx context.Context, draft domain.BookingDraft, client *domain.Client, reservationID int64) bool {
	err := uc.mailClient.SendReceipt(ctx, &mailservice.SendReceiptRequest{
		Recipient:     client.Email,
		ReservationID: reservationID,
		Date:          draft.Slot.Date.Format(domain.DateFormat),
		TimeWindow:    draft.Slot.TimeWindow(),
		CourtName:     draft.Court.Name,
		Amount:        draft.Total(),
		MethodLabel:   draft.PaymentMethod.Label(),
		ClientName:    client.FullName(),
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: receipt delivery failed for reservation id=%d: %v", reservationID, err)
		return false
	}

	uc.logger.Info("SubmitBooking: receipt sent to %s for reservation id=%d", client.Email, reservationID)
	return true
}

// fail фиксирует сбойный шаг, пишет запись в журнал и возвращает
// частичный результат вместе с ошибкой
func (uc *UseCase) fail(ctx context.Context, req *Request, resp *Response, step Step, err error) (*Response, error) {
	resp.Success = false
	resp.FailedStep = step
	uc.writeSubmissionLog(ctx, req, resp, err)
	return resp, err
}

// writeSubmissionLog пишет итог отправки в журнал, best-effort
// Сбой журнала не меняет исход отправки
func (uc *UseCase) writeSubmissionLog(ctx context.Context, req *Request, resp *Response, submitErr error) {
	rec := &submissionlog.Record{
		SessionID:     req.SessionID,
		StaffID:       req.StaffID,
		CourtID:       req.Draft.Court.ID,
		SlotID:        req.Draft.Slot.ID,
		TotalPrice:    resp.TotalPrice,
		PaymentMethod: string(req.Draft.PaymentMethod),
		Outcome:       submissionlog.OutcomeSuccess,
	}

	if resp.ClientID > 0 {
		rec.ClientID = ptr.Ptr(resp.ClientID)
	}
	rec.ServiceRecordID = resp.ServiceRecordID
	if resp.ReservationID > 0 {
		rec.ReservationID = ptr.Ptr(resp.ReservationID)
	}
	if resp.PaymentID > 0 {
		rec.PaymentID = ptr.Ptr(resp.PaymentID)
	}

	if submitErr != nil {
		rec.Outcome = submissionlog.OutcomeFailed
		rec.FailedStep = ptr.Ptr(string(resp.FailedStep))
		rec.ErrorMessage = ptr.Ptr(submitErr.Error())
	}

	if _, err := uc.submissionLog.Create(ctx, rec); err != nil {
		uc.logger.Warn("SubmitBooking: failed to write submission log for session=%s: %v", req.SessionID, err)
	}
}

// formatPaymentDate форматирует дату платежа для wire-формата (YYYY-MM-DD)
func formatPaymentDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	return ptr.Ptr(date.Format(domain.DateFormat))
}

func courtID(req *Request) int64 {
	if req.Draft.Court == nil {
		return 0
	}
	return req.Draft.Court.ID
}

func slotID(req *Request) int64 {
	if req.Draft.Slot == nil {
		return 0
	}
	return req.Draft.Slot.ID
}

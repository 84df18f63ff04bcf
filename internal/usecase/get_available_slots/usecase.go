package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/estadia/BookingWizardService/internal/domain"
	courtClient "github.com/estadia/BookingWizardService/internal/integrations/courtservice"
)

// UseCase use case для получения доступных слотов площадки
type UseCase struct {
	courtClient CourtServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courtClient CourtServiceClient, logger Logger) *UseCase {
	return &UseCase{
		courtClient: courtClient,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date != nil {
		uc.logger.Info("GetAvailableSlots: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))
	} else {
		uc.logger.Info("GetAvailableSlots: court=%d, all dates", req.CourtID)
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	court, err := uc.courtClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	domainCourt := court.ToDomain()

	// 3. Неактивные площадки бронировать нельзя
	if !domainCourt.IsActive() {
		uc.logger.Warn("GetAvailableSlots: court id=%d is inactive", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 4. Получаем слоты площадки
	rawSlots, err := uc.courtClient.ListSlots(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 5. Фильтруем занятые/отменённые и сортируем
	// Пустой результат - не ошибка: у площадки может не быть свободных слотов
	slots := filterAvailable(rawSlots, req.CourtID)
	sortSlots(slots)

	uc.logger.Info("GetAvailableSlots: court=%d, %d of %d slots available", req.CourtID, len(slots), len(rawSlots))

	return &Response{
		Court: domainCourt,
		Slots: slots,
	}, nil
}

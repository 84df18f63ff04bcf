package resolve_client

import (
	"context"
	"errors"

	"github.com/estadia/BookingWizardService/internal/domain"
	clientClient "github.com/estadia/BookingWizardService/internal/integrations/clientservice"
)

// UseCase use case для поиска клиента по DNI
type UseCase struct {
	clientClient ClientServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clientClient ClientServiceClient, logger Logger) *UseCase {
	return &UseCase{
		clientClient: clientClient,
		logger:       logger,
	}
}

// Execute выполняет use case поиска клиента по DNI
//
// Сбой ClientService деградирует до "не найден": оператор в этом случае
// вводит данные клиента вручную, а материализация при отправке повторит
// попытку через регистрацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveClient: dni=%s", req.DNI)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveClient: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем клиента по DNI
	user, err := uc.clientClient.FindByDNI(ctx, req.DNI)
	if err != nil {
		if !errors.Is(err, clientClient.ErrClientNotFound) {
			uc.logger.Warn("ResolveClient: lookup failed for dni=%s, degrading to manual entry: %v", req.DNI, err)
		}
		return &Response{
			Found:  false,
			Client: newClientTemplate(req.DNI),
		}, nil
	}

	uc.logger.Info("ResolveClient: found client id=%d for dni=%s", user.ID, req.DNI)

	return &Response{
		Found:  true,
		Client: user.ToDomain(),
	}, nil
}

// newClientTemplate возвращает заготовку нового клиента с предзаполненным DNI
func newClientTemplate(dni string) *domain.Client {
	return &domain.Client{
		DNI:    dni,
		Status: domain.ClientStatusActive,
	}
}

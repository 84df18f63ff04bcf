package reservationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с сервисом резерваций и сервисных записей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса резерваций
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateServiceRecord создает запись выбранных дополнительных услуг
// Возвращает ID созданной записи
func (c *Client) CreateServiceRecord(ctx context.Context, reqBody *CreateServiceRecordRequest) (int64, error) {
	reqURL := fmt.Sprintf("%s/api/adicionales", c.baseURL)

	resp, err := c.postJSON(ctx, reqURL, reqBody)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var record ServiceRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if record.ID == 0 {
		return 0, fmt.Errorf("%w: missing id_servicio in response", ErrInvalidResponse)
	}

	return record.ID, nil
}

// CreateReservation создает резервацию
// Конфликт слота (гонка с другой сессией) возвращается как ErrSlotConflict
func (c *Client) CreateReservation(ctx context.Context, reqBody *CreateReservationRequest) (*Reservation, error) {
	reqURL := fmt.Sprintf("%s/api/reservas", c.baseURL)

	resp, err := c.postJSON(ctx, reqURL, reqBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, ErrSlotConflict
	case http.StatusBadRequest:
		// Бэкенд отдаёт 400 с текстом причины; недоступность слота различаем по detail
		var errResp ErrorResponse
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &errResp); err == nil &&
			strings.Contains(strings.ToLower(errResp.Detail), "no disponible") {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: %s", ErrReservationRejected, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created CreateReservationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.Reservation.ID == 0 {
		return nil, fmt.Errorf("%w: missing id_reserva in response", ErrInvalidResponse)
	}

	return &created.Reservation, nil
}

// postJSON выполняет POST запрос с JSON телом
func (c *Client) postJSON(ctx context.Context, reqURL string, reqBody interface{}) (*http.Response, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}

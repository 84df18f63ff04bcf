package courtservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/estadia/BookingWizardService/internal/domain"
)

// Client клиент для работы с сервисом каталога площадок и слотов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListCourts получает список всех площадок комплекса
func (c *Client) ListCourts(ctx context.Context) ([]Court, error) {
	reqURL := fmt.Sprintf("%s/api/canchas", c.baseURL)

	var courts []Court
	if err := c.getJSON(ctx, reqURL, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

// GetCourt получает площадку по ID
func (c *Client) GetCourt(ctx context.Context, courtID int64) (*Court, error) {
	reqURL := fmt.Sprintf("%s/api/canchas/%d", c.baseURL, courtID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCourtNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var court Court
	if err := json.NewDecoder(resp.Body).Decode(&court); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &court, nil
}

// ListSlots получает слоты площадки, опционально ограниченные датой
// Возвращаются слоты во всех статусах - фильтрация доступности выполняется usecase-ом
func (c *Client) ListSlots(ctx context.Context, courtID int64, date *time.Time) ([]Slot, error) {
	query := url.Values{}
	query.Set("id_cancha", fmt.Sprintf("%d", courtID))
	if date != nil {
		query.Set("fecha", date.Format(domain.DateFormat))
	}
	reqURL := fmt.Sprintf("%s/api/turnos?%s", c.baseURL, query.Encode())

	var slots []Slot
	if err := c.getJSON(ctx, reqURL, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

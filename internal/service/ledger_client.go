package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avc/payout-console/internal/domain"
)

// errNotFound возвращается doRequest для ответа 404
var errNotFound = errors.New("not found")

// HTTPLedgerClient реализует domain.LedgerClient поверх HTTP API сервиса выплат.
// Запросы не повторяются.
type HTTPLedgerClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewLedgerClient создает новый HTTPLedgerClient
func NewLedgerClient(baseURL, apiToken string, timeout time.Duration) *HTTPLedgerClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPLedgerClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type merchantsResponse struct {
	Merchants  []domain.MerchantAggregate `json:"merchants"`
	TotalCount int                        `json:"totalCount"`
}

type payoutsResponse struct {
	Payouts    []domain.Payout `json:"payouts"`
	TotalCount int             `json:"totalCount"`
}

type createPayoutRequest struct {
	ShopID     string      `json:"shopId"`
	Amount     json.Number `json:"amount"`
	Network    string      `json:"network"`
	Wallet     string      `json:"wallet"`
	Notes      string      `json:"notes,omitempty"`
	TxID       string      `json:"txid,omitempty"`
	PeriodFrom string      `json:"periodFrom,omitempty"`
	PeriodTo   string      `json:"periodTo,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ListMerchants получает страницу агрегатов мерчантов
func (c *HTTPLedgerClient) ListMerchants(ctx context.Context, filter domain.MerchantFilter) (*domain.Page[domain.MerchantAggregate], error) {
	var resp merchantsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/merchants", filter.Values(), nil, &resp); err != nil {
		return nil, fmt.Errorf("ledger client: failed to list merchants: %w", err)
	}

	items := resp.Merchants
	if items == nil {
		items = []domain.MerchantAggregate{}
	}
	return &domain.Page[domain.MerchantAggregate]{
		Items:      items,
		TotalCount: resp.TotalCount,
		Page:       filter.Page,
		PageSize:   filter.Limit,
	}, nil
}

// GetMerchant получает актуальный агрегат одного мерчанта
func (c *HTTPLedgerClient) GetMerchant(ctx context.Context, shopID string) (*domain.MerchantAggregate, error) {
	var merchant domain.MerchantAggregate
	err := c.doRequest(ctx, http.MethodGet, "/merchants/"+url.PathEscape(shopID), nil, nil, &merchant)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("ledger client: failed to get merchant %s: %w", shopID, err)
	}
	return &merchant, nil
}

// ListPayouts получает страницу истории выплат
func (c *HTTPLedgerClient) ListPayouts(ctx context.Context, filter domain.PayoutFilter) (*domain.Page[domain.Payout], error) {
	var resp payoutsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/payouts", filter.Values(), nil, &resp); err != nil {
		return nil, fmt.Errorf("ledger client: failed to list payouts: %w", err)
	}

	items := resp.Payouts
	if items == nil {
		items = []domain.Payout{}
	}
	return &domain.Page[domain.Payout]{
		Items:      items,
		TotalCount: resp.TotalCount,
		Page:       filter.Page,
		PageSize:   filter.Limit,
	}, nil
}

// GetPayout получает одну выплату
func (c *HTTPLedgerClient) GetPayout(ctx context.Context, payoutID string) (*domain.Payout, error) {
	var payout domain.Payout
	err := c.doRequest(ctx, http.MethodGet, "/payouts/"+url.PathEscape(payoutID), nil, nil, &payout)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, domain.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("ledger client: failed to get payout %s: %w", payoutID, err)
	}
	return &payout, nil
}

// CreatePayout отправляет команду создания выплаты
func (c *HTTPLedgerClient) CreatePayout(ctx context.Context, cmd domain.CreatePayoutCommand) (*domain.Payout, error) {
	body := createPayoutRequest{
		ShopID:  cmd.ShopID,
		Amount:  json.Number(cmd.Amount.String()),
		Network: string(cmd.Network),
		Wallet:  cmd.Wallet,
		Notes:   cmd.Notes,
		TxID:    cmd.TxID,
	}
	if cmd.PeriodFrom != nil && cmd.PeriodTo != nil {
		body.PeriodFrom = cmd.PeriodFrom.Format(time.RFC3339)
		body.PeriodTo = cmd.PeriodTo.Format(time.RFC3339)
	}

	var payout domain.Payout
	if err := c.doRequest(ctx, http.MethodPost, "/payouts", nil, body, &payout); err != nil {
		var de *decodeError
		if errors.As(err, &de) {
			return nil, fmt.Errorf("ledger client: %w: %v", domain.ErrCommandUnconfirmed, err)
		}
		return nil, asCommandError(err)
	}
	if payout.ID == "" {
		return nil, fmt.Errorf("ledger client: %w: created payout has no id", domain.ErrCommandUnconfirmed)
	}
	return &payout, nil
}

// DeletePayout отправляет команду удаления выплаты
func (c *HTTPLedgerClient) DeletePayout(ctx context.Context, payoutID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/payouts/"+url.PathEscape(payoutID), nil, nil, nil); err != nil {
		return asCommandError(err)
	}
	return nil
}

// GetStats получает сводку для шапки консоли
func (c *HTTPLedgerClient) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.doRequest(ctx, http.MethodGet, "/stats", nil, nil, &stats); err != nil {
		return nil, fmt.Errorf("ledger client: failed to get stats: %w", err)
	}
	return &stats, nil
}

// statusError представляет ответ сервиса с кодом ошибки
type statusError struct {
	statusCode int
	message    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.statusCode, e.message)
}

// decodeError означает, что сервис ответил 2xx, но тело ответа не разобрано
type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.err)
}

func (e *decodeError) Unwrap() error {
	return e.err
}

// doRequest выполняет запрос и разбирает ответ в out.
// 201 с пустым телом считается успехом, out остается нулевым.
func (c *HTTPLedgerClient) doRequest(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode >= 400:
		return &statusError{statusCode: resp.StatusCode, message: readErrorMessage(resp)}
	case resp.StatusCode == http.StatusNoContent || out == nil:
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &decodeError{err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if resp.StatusCode == http.StatusCreated {
			return nil
		}
		return &decodeError{err: io.ErrUnexpectedEOF}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &decodeError{err: err}
	}
	return nil
}

// readErrorMessage извлекает текст ошибки из ответа сервиса
func readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var errResp errorResponse
	if json.Unmarshal(data, &errResp) == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return strings.TrimSpace(string(data))
}

func asCommandError(err error) error {
	var se *statusError
	if errors.As(err, &se) {
		return &CommandError{StatusCode: se.statusCode, Message: se.message}
	}
	if errors.Is(err, errNotFound) {
		return &CommandError{StatusCode: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)}
	}
	return fmt.Errorf("ledger client: %w", err)
}

// Package appsscript talks to the external Apps-Script book service.
// Each operation is one request/response exchange with a fixed per-call
// timeout and exactly one of three outcomes: decoded payload,
// *domain.BackendError (the service answered and refused), or a
// transport/parse error.
package appsscript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
	"github.com/paulkisakye-beep/little-readers/pkg/metrics"
)

var _ ports.BookGateway = (*Client)(nil)

// Config — gateway settings. OrderTimeout covers processOrder, which
// is slower on the backend than the read-only lookups.
type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	OrderTimeout time.Duration
}

type Client struct {
	baseURL      string
	apiKey       string
	timeout      time.Duration
	orderTimeout time.Duration
	httpClient   *http.Client
	log          ports.Logger
}

func NewClient(cfg Config, log ports.Logger) *Client {
	t := cfg.Timeout
	if t <= 0 {
		t = 30 * time.Second
	}
	ot := cfg.OrderTimeout
	if ot <= 0 {
		ot = 45 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		timeout:      t,
		orderTimeout: ot,
		// Per-call deadlines come from the context; the client itself
		// carries no timeout so the longer order deadline is honored.
		httpClient: &http.Client{},
		log:        log,
	}
}

// booksResponse mirrors the backend's getBooks envelope.
type booksResponse struct {
	Success bool          `json:"success"`
	Books   []domain.Book `json:"books"`
	Error   string        `json:"error"`
}

func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var resp booksResponse
	if err := c.get(ctx, "getBooks", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, c.backendErr(ctx, "getBooks", resp.Error)
	}
	c.ok("getBooks")
	return resp.Books, nil
}

func (c *Client) CheckAvailability(ctx context.Context, codes []string) (map[string]domain.Availability, error) {
	params := url.Values{"codes": {strings.Join(codes, ",")}}
	var resp map[string]domain.Availability
	if err := c.get(ctx, "checkAvailability", params, &resp); err != nil {
		return nil, err
	}
	c.ok("checkAvailability")
	return resp, nil
}

func (c *Client) DeliveryAreas(ctx context.Context) ([]string, error) {
	var resp []string
	if err := c.get(ctx, "deliveryAreas", nil, &resp); err != nil {
		return nil, err
	}
	c.ok("deliveryAreas")
	return resp, nil
}

type deliveryPriceResponse struct {
	Found   bool   `json:"found"`
	Matched string `json:"matched"`
	Price   int64  `json:"price"`
}

// DeliveryPrice — (nil, nil) means the backend does not deliver to the
// area; the distinction from an error matters to checkout.
func (c *Client) DeliveryPrice(ctx context.Context, area string) (*domain.DeliveryQuote, error) {
	params := url.Values{"area": {area}}
	var resp deliveryPriceResponse
	if err := c.get(ctx, "deliveryPrice", params, &resp); err != nil {
		return nil, err
	}
	c.ok("deliveryPrice")
	if !resp.Found {
		return nil, nil
	}
	return &domain.DeliveryQuote{Area: area, Matched: resp.Matched, Fee: resp.Price}, nil
}

type promoResponse struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

func (c *Client) ValidatePromo(ctx context.Context, code string) (*domain.Promo, error) {
	params := url.Values{"code": {code}}
	var resp promoResponse
	if err := c.get(ctx, "validatePromo", params, &resp); err != nil {
		return nil, err
	}
	c.ok("validatePromo")
	if !resp.Valid {
		return nil, nil
	}
	return &domain.Promo{Code: resp.Code, Discount: resp.Discount}, nil
}

type orderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Error   string `json:"error"`
}

// ProcessOrder — POSTs the order with the shared API credential. Sent
// exactly once per call; retries are the caller's (i.e. the user's)
// decision.
func (c *Client) ProcessOrder(ctx context.Context, order *domain.Order) (string, error) {
	const op = "processOrder"

	body, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("%s: marshal order: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.orderTimeout)
	defer cancel()

	u := c.baseURL + "?apiKey=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp orderResponse
	if err := c.do(req, op, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", c.backendErr(ctx, op, resp.Error)
	}
	c.ok(op)
	return resp.OrderID, nil
}

// get — shared GET path: ?action=<op>&<params>, per-call timeout,
// strict decode into out.
func (c *Client) get(ctx context.Context, op string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{"action": {op}}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	return c.do(req, op, out)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayCalls.WithLabelValues(op, "transport_error").Inc()
		c.log.Warnf(req.Context(), "gateway %s transport error: %v", op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GatewayCalls.WithLabelValues(op, "backend_error").Inc()
		c.log.Warnf(req.Context(), "gateway %s status=%d", op, resp.StatusCode)
		return &domain.BackendError{Op: op, Message: fmt.Sprintf("backend returned status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GatewayCalls.WithLabelValues(op, "transport_error").Inc()
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		metrics.GatewayCalls.WithLabelValues(op, "transport_error").Inc()
		c.log.Warnf(req.Context(), "gateway %s invalid json: %v", op, err)
		return fmt.Errorf("%s: invalid response: %w", op, err)
	}

	return nil
}

func (c *Client) backendErr(ctx context.Context, op, msg string) error {
	metrics.GatewayCalls.WithLabelValues(op, "backend_error").Inc()
	if msg == "" {
		msg = "backend returned success=false"
	}
	c.log.Warnf(ctx, "gateway %s backend error: %s", op, msg)
	return &domain.BackendError{Op: op, Message: msg}
}

func (c *Client) ok(op string) {
	metrics.GatewayCalls.WithLabelValues(op, "ok").Inc()
}

// Package commerceapi is an HTTP client for the Shopity commerce backend
// (catalog, orders and authentication endpoints).
package commerceapi

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

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	pathProducts    = "/api/v2/getProducts"
	pathProduct     = "/api/v2/getProduct/"
	pathCreateOrder = "/api/v3/createOrder"
	pathOrders      = "/api/v3/allOrders/"
	pathLogin       = "/api/v1/login"
	pathRegister    = "/api/v1/register"
)

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("commerce api unavailable")

// StatusError is returned when the backend answers with an unexpected status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("commerce api responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("commerce api responded with status %d: %s", e.StatusCode, e.Message)
}

// TokenSource supplies the bearer token of the current session, if any.
type TokenSource interface {
	AccessToken() string
}

type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }

// defines the operations of the commerce backend used by the client.
type Client interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) error
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

type Options struct {
	BaseURL         string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	// Transport defaults to http.DefaultTransport; it is always wrapped for tracing.
	Transport http.RoundTripper
}

type Option func(*client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *client) { c.tokens = ts }
}

type response struct {
	status int
	body   []byte
}

type client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*response]
	tokens  TokenSource
}

func NewClient(opts Options, options ...Option) Client {
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	c := &client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		breaker: gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
			Name:    "commerce-api",
			Timeout: opts.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
		}),
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// ListProducts implements Client.
func (c *client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out models.ProductListResponse

	if err := c.call(ctx, http.MethodGet, pathProducts, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}

	if out.Products == nil {
		out.Products = []models.Product{}
	}

	return out.Products, nil
}

// GetProduct implements Client.
func (c *client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var out models.ProductResponse

	if err := c.call(ctx, http.MethodGet, pathProduct+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.Product, nil
}

// CreateOrder implements Client. Only 201 Created counts as success.
func (c *client) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) error {
	return c.call(ctx, http.MethodPost, pathCreateOrder, req, nil, http.StatusCreated)
}

// ListOrders implements Client.
func (c *client) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	var out models.OrderListResponse

	if err := c.call(ctx, http.MethodGet, pathOrders+url.PathEscape(userID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}

	if out.Orders == nil {
		out.Orders = []models.Order{}
	}

	return out.Orders, nil
}

// Login implements Client.
func (c *client) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse

	if err := c.call(ctx, http.MethodPost, pathLogin, req, &out, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// Register implements Client.
func (c *client) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse

	if err := c.call(ctx, http.MethodPost, pathRegister, req, &out, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// call sends one request, retrying exactly once when the backend answers 401.
func (c *client) call(ctx context.Context, method, path string, body any, out any, expected ...int) error {
	var payload []byte

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	resp, err := c.send(ctx, method, path, payload)
	if err == nil && resp.status == http.StatusUnauthorized {
		resp, err = c.send(ctx, method, path, payload)
	}

	if err != nil {
		return err
	}

	if !expectedStatus(resp.status, expected) {
		return &StatusError{StatusCode: resp.status, Message: serverMessage(resp.body)}
	}

	if out == nil || len(resp.body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func (c *client) send(ctx context.Context, method, path string, payload []byte) (*response, error) {
	resp, err := c.breaker.Execute(func() (*response, error) {

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", uuid.NewString())

		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		if c.tokens != nil {
			if token := c.tokens.AccessToken(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		res, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
		defer res.Body.Close()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		out := &response{status: res.StatusCode, body: data}

		// 5xx answers count against the breaker.
		if res.StatusCode >= http.StatusInternalServerError {
			return out, &StatusError{StatusCode: res.StatusCode, Message: serverMessage(data)}
		}

		return out, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return resp, err
}

func expectedStatus(status int, expected []int) bool {
	for _, s := range expected {
		if s == status {
			return true
		}
	}

	return false
}

// serverMessage extracts the "message" field the backend puts in error bodies.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return strings.TrimSpace(string(body))
}

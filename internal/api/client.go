package api

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
	"sync"
	"time"

	"homestay-client/internal/dto/response"
	"homestay-client/pkg/middleware"
	"homestay-client/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIError carries the server's error payload for a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Message extracts the server-provided error message, falling back to
// a generic string for transport failures.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client is the single shared HTTP client. Every resource group goes
// through it, so the bearer token and the 401 handling apply
// uniformly.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()

	Auth     *AuthAPI
	Rooms    *RoomsAPI
	Bookings *BookingsAPI
	Payments *PaymentsAPI
	Admin    *AdminAPI
	Manager  *ManagerAPI
}

func NewClient(config *utils.Config, logger *zap.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(config.API.BaseURL, "/"),
		log:     logger.With(zap.String("component", "api")),
	}

	// Interceptor chain: bearer token out, 401 handling in.
	transport := middleware.Bearer(c)(
		middleware.Unauthorized(c.handleUnauthorized)(
			middleware.Logger(c.log)(http.DefaultTransport)))

	c.http = &http.Client{
		Transport: transport,
		Timeout:   time.Duration(config.API.TimeoutSeconds) * time.Second,
	}

	c.Auth = &AuthAPI{client: c}
	c.Rooms = &RoomsAPI{client: c}
	c.Bookings = &BookingsAPI{client: c}
	c.Payments = &PaymentsAPI{client: c}
	c.Admin = &AdminAPI{client: c}
	c.Manager = &ManagerAPI{client: c}

	return c
}

// Token implements middleware.TokenSource.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs the default auth header for future requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

// OnUnauthorized registers the session-clearing hook invoked on 401
// responses. Set once during wiring.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *Client) handleUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	hadToken := c.token != ""
	c.mu.RUnlock()

	// A 401 on an unauthenticated request has no session to clear.
	if !hadToken {
		return
	}

	c.log.Warn("Received 401, clearing session")

	if fn != nil {
		fn()
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send runs a prepared request through the interceptor chain and
// decodes the response.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	requestID, ok := utils.GetRequestIDFromContext(req.Context())
	if !ok {
		requestID = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload response.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

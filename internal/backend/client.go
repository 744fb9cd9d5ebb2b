// Package backend is the HTTP client for the trading-journal REST API.
//
// Every endpoint answers with the envelope {success, data, message}. Methods
// return the decoded data on a 2xx response; anything else surfaces as an
// *APIError carrying the backend's message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"tradejournal/internal/logger"
	"tradejournal/internal/metrics"
)

// NetworkErrorMessage is shown when no structured error body is available.
const NetworkErrorMessage = "Network error occurred"

type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("backend: %s", e.Message)
	}
	return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Message turns any error into a display-ready string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return NetworkErrorMessage
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type tokenKey struct{}

// WithToken attaches a bearer token to ctx for the next backend call.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetToken sets the session token used when the context carries none.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) authToken(ctx context.Context) string {
	if t := tokenFrom(ctx); t != "" {
		return t
	}
	return c.Token()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.authToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do issues the call and decodes the envelope's data into out.
// endpoint is the route template used as a metrics label.
func (c *Client) do(ctx context.Context, method, endpoint, path string, body, out interface{}) error {
	start := time.Now()
	err := c.doRaw(ctx, method, path, body, out)
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.RecordBackendRequest(method, endpoint, outcome, time.Since(start).Seconds())
	return err
}

func (c *Client) doRaw(ctx context.Context, method, path string, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return &APIError{Message: NetworkErrorMessage, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("backend request failed", "method", method, "path", path, "error", err)
		return &APIError{Message: NetworkErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: NetworkErrorMessage, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := NetworkErrorMessage
		if decodeErr == nil {
			if env.Message != "" {
				msg = env.Message
			} else if env.Error != "" {
				msg = env.Error
			}
		}
		logger.Debug("backend rejected request", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: NetworkErrorMessage, Err: decodeErr}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "Unexpected response from server", Err: err}
	}
	return nil
}

// doBinary fetches a non-JSON body such as an invoice PDF.
func (c *Client) doBinary(ctx context.Context, endpoint, path string) ([]byte, string, error) {
	start := time.Now()
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", &APIError{Message: NetworkErrorMessage, Err: err}
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(http.MethodGet, endpoint, "failure", time.Since(start).Seconds())
		return nil, "", &APIError{Message: NetworkErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordBackendRequest(http.MethodGet, endpoint, "failure", time.Since(start).Seconds())
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: NetworkErrorMessage, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordBackendRequest(http.MethodGet, endpoint, "failure", time.Since(start).Seconds())
		msg := NetworkErrorMessage
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	metrics.RecordBackendRequest(http.MethodGet, endpoint, "success", time.Since(start).Seconds())
	return data, resp.Header.Get("Content-Type"), nil
}

// Package api provides the client for the text-moderation REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toxctl/toxctl/internal/common"
)

// Config holds API client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("server URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("server URL must be http or https")
	}
	return nil
}

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means guest mode and no Authorization header.
type TokenSource interface {
	Token() string
}

// Client is the single gateway through which every API call flows. It
// attaches auth headers, serializes JSON bodies and normalizes errors so
// callers either get the parsed success payload or fail as a unit.
type Client struct {
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *slog.Logger
	baseURL        string
	retryOpts      common.RetryOptions
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config, tokens TokenSource) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     tokens,
		logger:     slog.Default().With("component", "api"),
		retryOpts: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 1 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// BaseURL returns the server this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// OnUnauthorized registers the forced-logout hook. It is invoked exactly
// when the server returns 401 to a request that carried a bearer token;
// this is the only automatic session-termination trigger.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// errorEnvelope is the error shape the API returns. Some endpoints use
// "error", others "message".
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorEnvelope) text() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "Request failed"
}

// Call performs one API request. The body, when non-nil, is serialized as
// JSON; the response is decoded into out when out is non-nil. Rate-limit
// responses are retried with backoff; every other failure surfaces once.
func (c *Client) Call(ctx context.Context, method, endpoint string, body, out any) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	return common.WithRetry(ctx, func() error {
		return c.do(ctx, method, endpoint, payload, out)
	}, c.retryOpts)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token := c.tokens.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("API request", "method", method, "endpoint", endpoint, "authenticated", token != "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.NewUserError("Could not reach the analysis server", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.NewUserError("Invalid server response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleFailure(resp.StatusCode, data, token != "")
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Malformed success bodies are normalized, never surfaced raw.
		return common.NewUserError("Invalid server response", err)
	}
	return nil
}

// handleFailure maps a non-2xx response onto the error taxonomy.
func (c *Client) handleFailure(status int, data []byte, hadToken bool) error {
	var envelope errorEnvelope
	// A non-JSON error body falls through to the generic fallback message.
	_ = json.Unmarshal(data, &envelope)

	switch {
	case status == http.StatusUnauthorized && hadToken:
		c.logger.Warn("Token expired or invalid, logging out")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return common.NewUserError("Session expired. Please login again.", common.ErrSessionExpired)

	case status == http.StatusUnauthorized:
		return common.NewUserError(envelope.text(), common.ErrUnauthorized)

	case status == http.StatusNotFound:
		return common.NewUserError(envelope.text(), common.ErrNotFound)

	case status == http.StatusTooManyRequests:
		c.logger.Warn("Rate limit hit, will retry")
		return &common.RetryableError{Err: common.ErrRateLimit, Retryable: true}

	default:
		return common.NewUserError(envelope.text(), fmt.Errorf("server returned status %d", status))
	}
}

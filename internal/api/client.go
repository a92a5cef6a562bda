package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"
)

const defaultTimeout = 30 * time.Second

// Config configures the backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client

	// ReadRetry is applied to idempotent reads only. Writes are never
	// retried by this layer.
	ReadRetry utils.RetryConfig
}

// Client translates typed calls into authenticated HTTP requests
// against the backend and normalizes its {success, message, data}
// envelope into typed results or errors.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
	sessions   *session.Manager
	readRetry  utils.RetryConfig
}

func New(logger *slog.Logger, sessions *session.Manager, cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		logger:     logger.With(slog.String("component", "api")),
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
		readRetry:  cfg.ReadRetry,
	}
}

// Error carries the backend-supplied failure message and the HTTP
// status it arrived with (0 for envelope-level failures on 2xx).
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap marks 4xx and envelope failures as terminal so the retry
// policy gives up on them immediately.
func (e *Error) Unwrap() error {
	if e.StatusCode >= http.StatusInternalServerError {
		return nil
	}
	return entities.ErrBackendRejected
}

// StatusOf extracts the backend HTTP status from err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request describes one backend call. name keys the metrics series;
// fallback is surfaced when the backend gives no message.
type request struct {
	name     string
	method   string
	path     string
	query    url.Values
	body     any
	authed   bool
	fallback string
}

// call performs a single request without retries.
func (c *Client) call(ctx context.Context, req request, out any) error {
	start := time.Now()
	status, err := c.roundTrip(ctx, req, out)
	observeBackendCall(req.name, status, time.Since(start))
	return err
}

// read performs an idempotent request under the read retry policy.
// Authentication failures and backend rejections are terminal.
func (c *Client) read(ctx context.Context, req request, out any) error {
	return utils.Retry(c.readRetry, func() error {
		return c.call(ctx, req, out)
	}, entities.ErrAuthRequired, entities.ErrBackendRejected)
}

func (c *Client) roundTrip(ctx context.Context, req request, out any) (int, error) {
	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if req.authed {
		token, err := c.sessions.Token(ctx)
		if err != nil {
			// Fail fast before any network work; callers redirect to
			// login on this error.
			return 0, err
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", req.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Clear the stale credential first so the next guarded render
		// cannot loop on it.
		if err := c.sessions.Clear(ctx); err != nil {
			c.logger.ErrorContext(ctx, "failed to clear session", slog.Any("error", err))
		}
		return resp.StatusCode, entities.ErrAuthRequired
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return resp.StatusCode, &Error{StatusCode: resp.StatusCode, Message: req.fallback}
		}
		return resp.StatusCode, fmt.Errorf("%s: failed to decode response: %w", req.name, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		message := env.Message
		if message == "" {
			message = req.fallback
		}
		return resp.StatusCode, &Error{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%s: failed to decode data: %w", req.name, err)
		}
	}
	return resp.StatusCode, nil
}

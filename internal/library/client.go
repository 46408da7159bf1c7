// Package library is the HTTP client for the remote library API. It is the
// only place in the shell that talks to the network; everything above it
// works with domain values and coded errors.
package library

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bookhavenapp/bookhaven-web/internal/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds client construction parameters.
type Config struct {
	// BaseURL is the root of the API, e.g. http://localhost:228.
	BaseURL string
	// Timeout bounds every request (default: 30s).
	Timeout time.Duration
	// RequestsPerSecond throttles outbound calls; 0 disables throttling.
	RequestsPerSecond float64
	// Burst is the limiter burst size, used only when throttling is on.
	Burst int
	// Logger receives request-level debug logs.
	Logger *slog.Logger
}

// Client provides access to the library API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// New creates a new library API client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: limiter,
		logger:      logger,
	}
}

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	if c.rateLimiter == nil {
		return nil
	}
	return c.rateLimiter.Wait(ctx)
}

// upstreamError is the structured error body some API responses carry.
type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one request. in, when non-nil, is marshalled as the JSON body;
// out, when non-nil, receives the decoded response body. The context tied to
// the inbound page request cancels the upstream call when the browser
// disconnects, so nothing acts on a response for a dead view.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.wait(ctx); err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "rate limit wait")
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, errors.CodeInternal, "encode request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "create request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("library API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.CodeUnavailable, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp, method, path)
	}

	if out != nil {
		if err := json.UnmarshalRead(resp.Body, out); err != nil {
			return errors.Wrapf(err, errors.CodeUpstream, "decode %s %s response", method, path)
		}
	}

	return nil
}

// statusError maps a non-2xx response to a domain error, preferring the
// server's own message when the body carries one.
func (c *Client) statusError(resp *http.Response, method, path string) error {
	msg := ""
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 {
		var ue upstreamError
		if json.Unmarshal(data, &ue) == nil {
			if ue.Message != "" {
				msg = ue.Message
			} else if ue.Error != "" {
				msg = ue.Error
			}
		}
	}

	c.logger.Warn("library API error response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"message", msg,
	)

	if resp.StatusCode == http.StatusNotFound {
		if msg == "" {
			msg = "not found"
		}
		return errors.NotFound(msg)
	}

	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d from %s %s", resp.StatusCode, method, path)
	}
	return errors.Upstream(msg)
}

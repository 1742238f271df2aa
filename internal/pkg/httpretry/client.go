// Package httpretry wraps an HTTP client with retries, exponential backoff
// and full jitter for calls to external APIs.
package httpretry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"
)

// Doer executes HTTP requests. *http.Client and *Client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client retries transport errors and 429/5xx responses.
type Client struct {
	client     Doer
	logger     *slog.Logger
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithBackoff sets the base and maximum retry delay.
func WithBackoff(base, max time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = base
		c.maxDelay = max
	}
}

// WithLogger sets the logger retries are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New wraps client. maxRetries counts attempts after the first one and
// defaults to 3.
func New(client Doer, maxRetries int, opts ...Option) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	c := &Client{
		client:     client,
		logger:     slog.Default(),
		maxRetries: maxRetries,
		baseDelay:  time.Second,
		maxDelay:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req, retrying on network errors and retryable statuses. Context
// cancellation is never retried. The last retryable response is returned
// as-is so the caller can read its body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := req.Context().Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("httpretry: reset request body: %w", err)
				}
				req.Body = body
			}

			delay := c.delay(attempt)
			c.logger.Warn("retrying request",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", c.maxRetries),
				slog.String("method", req.Method),
				slog.String("host", req.URL.Host),
				slog.String("path", req.URL.Path),
				slog.Duration("wait", delay),
				slog.Any("error", withoutURL(lastErr)),
			)

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-req.Context().Done():
				timer.Stop()
				if lastErr != nil {
					return nil, lastErr
				}
				return nil, req.Context().Err()
			}
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			if req.Context().Err() != nil {
				return nil, err
			}
			continue
		}
		if !Retryable(resp.StatusCode) || attempt == c.maxRetries {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		lastErr = fmt.Errorf("httpretry: server returned retryable status %d", resp.StatusCode)
	}
	return nil, lastErr
}

// delay is random(0, min(maxDelay, baseDelay*2^(attempt-1))) with a floor
// of a tenth of baseDelay.
func (c *Client) delay(attempt int) time.Duration {
	exp := float64(c.baseDelay) * math.Pow(2, float64(attempt-1))
	if exp > float64(c.maxDelay) {
		exp = float64(c.maxDelay)
	}
	d := time.Duration(rand.Float64() * exp)
	if floor := c.baseDelay / 10; d < floor {
		d = floor
	}
	return d
}

// withoutURL drops the request URL from transport errors so query-string
// credentials do not reach the logs.
func withoutURL(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) {
		return uErr.Err
	}
	return err
}

// Retryable reports whether status is worth another attempt.
func Retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

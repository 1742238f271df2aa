// Package gemini is the text-generation gateway to the Gemini
// generateContent REST endpoint.
package gemini

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
	"time"

	"golang.org/x/time/rate"

	"adpilot/internal/config/configs"
	"adpilot/internal/pkg/httpretry"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Cache stores generated texts. Lookup failures are logged and treated as
// misses.
type Cache interface {
	Get(ctx context.Context, model, prompt string) (string, bool, error)
	Set(ctx context.Context, model, prompt, text string) error
}

// Observer receives the outcome of every Generate call. outcome is "ok",
// "cache_hit" or a Kind.
type Observer interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
}

// Client implements port.TextGenerator.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	timeout  time.Duration

	http     httpretry.Doer
	limiter  *rate.Limiter
	cache    Cache
	observer Observer
	logger   *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithCache enables response caching.
func WithCache(c Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithObserver reports call outcomes to o.
func WithObserver(o Observer) Option {
	return func(cl *Client) { cl.observer = o }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// New builds a client from cfg. Requests are retried on transport errors
// and 429/5xx and throttled to cfg.RateLimit per second;
// a non-positive rate disables throttling.
func New(cfg configs.Gemini, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("gemini: parse base url: %w", err)
	}
	base = base.JoinPath("v1beta", "models", cfg.Model+":generateContent")

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	c := &Client{
		endpoint: base.String(),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		limiter:  rate.NewLimiter(limit, max(cfg.Burst, 1)),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = httpretry.New(
		&http.Client{Timeout: cfg.Timeout},
		cfg.MaxRetries,
		httpretry.WithBackoff(cfg.RetryBaseDelay, cfg.RetryMaxDelay),
		httpretry.WithLogger(c.logger),
	)
	return c, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

type part struct {
	Text *string `json:"text,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates *[]struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt and returns the first text part of the first
// candidate. Every failure is an *Error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	started := time.Now()

	if c.cache != nil {
		text, ok, err := c.cache.Get(ctx, c.model, prompt)
		if err != nil {
			c.logger.Warn("generation cache lookup failed", slog.Any("error", err))
		}
		if ok {
			c.observe("cache_hit", started)
			return text, nil
		}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.observe(string(KindOf(err)), started)
		return "", err
	}
	c.observe("ok", started)

	if c.cache != nil {
		if err := c.cache.Set(ctx, c.model, prompt, text); err != nil {
			c.logger.Warn("generation cache store failed", slog.Any("error", err))
		}
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: &prompt}}}},
	})
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+url.QueryEscape(c.apiKey), bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return "", &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Err: errors.New(string(bytes.TrimSpace(body)))}
	}

	return ParseResponse(body)
}

// ParseResponse extracts the first candidate's first text part from a
// generateContent response body.
func ParseResponse(body []byte) (string, error) {
	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &Error{Kind: KindMalformedResponse, Err: err}
	}
	if out.Candidates == nil || len(*out.Candidates) == 0 {
		return "", &Error{Kind: KindNoCandidates}
	}
	parts := (*out.Candidates)[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == nil {
		return "", &Error{Kind: KindNoText}
	}
	return *parts[0].Text, nil
}

// redactKey strips the query string, which carries the api key, from
// *url.Error values.
func redactKey(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) {
		if u, perr := url.Parse(uErr.URL); perr == nil {
			u.RawQuery = ""
			uErr.URL = u.String()
		}
	}
	return err
}

func (c *Client) observe(outcome string, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveGeneration(outcome, time.Since(started))
	}
}

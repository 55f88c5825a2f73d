// Package events fetches webhook events and backend health over HTTP.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/log"
	"github.com/google/uuid"
)

const (
	eventsPath = "/api/events"
	healthPath = "/api/health"
)

var errNotArray = errors.New("body is not a JSON array")

// HTTPClient is the subset of *http.Client the fetcher needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads the backend. It holds no state between calls: no cache,
// no retry.
type Client struct {
	baseURL   string
	http      HTTPClient
	userAgent string
	newID     func() string
	logger    domain.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.http = &http.Client{Timeout: d} }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithLogger sets the logger that records each request.
func WithLogger(l domain.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// New returns a Client for baseURL. Trailing slashes are dropped so that
// "http://host/" and "http://host" address the same endpoints.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:      &http.Client{},
		userAgent: "hookwatch",
		newID:     func() string { return uuid.NewString() },
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchEvents returns the events reported by the backend, in response
// order. On error no partial list is returned.
func (c *Client) FetchEvents(ctx context.Context) ([]domain.Event, error) {
	var list []domain.Event
	url, err := c.getJSON(ctx, eventsPath, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		// a literal null decodes without error
		return nil, &ResponseError{URL: url, StatusCode: http.StatusOK, Err: errNotArray}
	}
	return list, nil
}

// Health is the decoded /api/health payload. The payload is opaque:
// Raw holds it as decoded, Fields holds it when it is a JSON object.
// Status and Timestamp are filled from the object's fields, or Status
// from a bare string payload.
type Health struct {
	Status    string
	Timestamp string
	Fields    map[string]any
	Raw       any
}

// CheckHealth queries the backend liveness endpoint. Any JSON value in a
// 2xx response counts as healthy.
func (c *Client) CheckHealth(ctx context.Context) (Health, error) {
	var raw any
	if _, err := c.getJSON(ctx, healthPath, &raw); err != nil {
		return Health{}, err
	}

	h := Health{Raw: raw}
	switch v := raw.(type) {
	case map[string]any:
		h.Fields = v
		h.Status, _ = v["status"].(string)
		h.Timestamp, _ = v["timestamp"].(string)
	case string:
		h.Status = v
	}
	return h, nil
}

// getJSON performs one GET and decodes a 2xx body into out. It returns
// the full URL for error reporting.
func (c *Client) getJSON(ctx context.Context, path string, out any) (string, error) {
	url := c.baseURL + path
	id := c.newID()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return url, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", id)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("events: GET %s id=%s failed: %v", url, id, err)
		return url, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("events: GET %s id=%s status=%d in %s", url, id, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return url, &ResponseError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return url, &TransportError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return url, &ResponseError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	return url, nil
}

var _ domain.EventSource = (*Client)(nil)

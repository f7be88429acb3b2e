// Package search is a thin client for the Serper web search API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://google.serper.dev"
	defaultUA      = "usecase-agent/0.1"
)

// Client issues single, unretried search requests.
type Client struct {
	apiKey  string
	baseURL string
	ua      string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout. Zero disables it. The client
// given to WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		var h http.Client
		if c.http != nil {
			h = *c.http
		}
		h.Timeout = d
		c.http = &h
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.ua = ua }
}

// NewClient constructs a Client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		ua:      defaultUA,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithAPIKey returns a copy of c that authenticates with key. The HTTP
// client is shared.
func (c *Client) WithAPIKey(key string) *Client {
	cp := *c
	cp.apiKey = key
	return &cp
}

// Request is the body posted to /search.
type Request struct {
	Q string `json:"q"`
}

// Search posts {"q": subject} to /search. A 403 yields *AuthorizationError
// without reading the body; every other failure yields *RequestError.
func (c *Client) Search(ctx context.Context, subject string) (Response, error) {
	body, err := json.Marshal(Request{Q: subject})
	if err != nil {
		return Response{}, &RequestError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return Response{}, &RequestError{Err: err}
	}
	httpReq.Header.Set("X-API-KEY", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.ua)

	res, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, &RequestError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusForbidden {
		return Response{}, &AuthorizationError{Status: res.StatusCode}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return Response{}, &RequestError{
			Status: res.StatusCode,
			Err:    fmt.Errorf("http %d: %s", res.StatusCode, strings.TrimSpace(string(b))),
		}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, &RequestError{Status: res.StatusCode, Err: err}
	}
	if !json.Valid(b) {
		return Response{}, &RequestError{Status: res.StatusCode, Err: errors.New("response is not valid JSON")}
	}
	return Response{Raw: append(json.RawMessage(nil), b...)}, nil
}

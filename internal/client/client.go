// Package client provides the HTTP client shared by all registry-backed
// package managers and the GitHub API client.
//
// Version probes run against public registry endpoints that are sometimes
// slow or down; the client keeps a short fixed timeout, retries transient
// failures with exponential backoff, caches DNS lookups, and trips a
// per-host circuit breaker so a dead registry fails fast instead of costing
// a full timeout on every tool that uses it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/dnscache"
)

const defaultTimeout = 3 * time.Second

// Client is an HTTP client with retry logic for registry APIs.
type Client struct {
	hc         *http.Client
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
	authFn     func(url string) (headerName, headerValue string)
	breakers   *breakerSet
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.hc.Timeout = d
	}
}

// WithMaxRetries sets the maximum number of retries for transient failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithUserAgent sets the User-Agent header. crates.io rejects requests
// without a meaningful one.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithAuthFunc sets a function that returns an auth header for a given URL.
// Return empty strings to skip authentication for that URL.
func WithAuthFunc(fn func(url string) (headerName, headerValue string)) Option {
	return func(c *Client) {
		c.authFn = fn
	}
}

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// NewClient creates a new client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		hc: &http.Client{
			Timeout:   defaultTimeout,
			Transport: newCachingTransport(),
		},
		userAgent:  "provision/1.0 (+https://github.com/provkit/provision)",
		maxRetries: 2,
		baseDelay:  250 * time.Millisecond,
		breakers:   newBreakerSet(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultClient returns a client with the defaults every version probe uses:
// 3s timeout, 2 retries on 429/5xx, circuit breaking per registry host.
func DefaultClient() *Client {
	return NewClient()
}

// newCachingTransport builds a transport whose dialer resolves hosts through
// a shared DNS cache, refreshed in the background.
func newCachingTransport() *http.Transport {
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	dialer := &net.Dialer{
		Timeout:   defaultTimeout,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ips, err := resolver.LookupHost(ctx, host)
			if err != nil {
				return nil, err
			}
			for _, ip := range ips {
				conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
				if err == nil {
					return conn, nil
				}
			}
			return nil, fmt.Errorf("failed to dial any resolved IP for %s", host)
		},
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: defaultTimeout,
	}
}

// GetJSON fetches url and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// GetText fetches url and returns the response body as a string. Used for
// endpoints that speak plain text (the sdkman default-version endpoint).
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url, "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Do issues a request with an optional JSON body, decoding a JSON response
// into out when out is non-nil. Used by the GitHub client for its
// POST/PATCH/DELETE calls.
func (c *Client) Do(ctx context.Context, method, url string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	respBody, err := c.roundTrip(ctx, method, url, payload, "application/json")
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding %s: %w", url, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	breaker := c.breakers.forURL(url)
	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit open for %s: %w", hostOf(url), ErrUnavailable)
	}

	var body []byte
	var reqErr error
	_ = breaker.Call(func() error {
		body, reqErr = c.getWithRetry(ctx, url, accept)
		// A 404 is a definitive answer, not an upstream fault; it must not
		// count toward tripping the breaker.
		if httpErr, ok := reqErr.(*HTTPError); ok && httpErr.IsNotFound() {
			return nil
		}
		return reqErr
	}, 0)
	if reqErr != nil {
		return nil, reqErr
	}
	return body, nil
}

func (c *Client) getWithRetry(ctx context.Context, url, accept string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay(c.baseDelay, attempt)):
			}
		}

		body, err := c.roundTrip(ctx, http.MethodGet, url, nil, accept)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func retryable(err error) bool {
	switch e := err.(type) {
	case *RateLimitError:
		return true
	case *HTTPError:
		return e.StatusCode >= 500
	default:
		return false
	}
}

func (c *Client) roundTrip(ctx context.Context, method, url string, body io.Reader, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authFn != nil {
		if name, value := c.authFn(url); name != "" && value != "" {
			req.Header.Set(name, value)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return io.ReadAll(resp.Body)

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, &RateLimitError{RetryAfter: retryAfter}

	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(snippet),
		}
	}
}

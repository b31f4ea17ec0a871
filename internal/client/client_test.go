package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Error("User-Agent not set")
		}
		w.Write([]byte(`{"version": "1.2.3"}`))
	}))
	defer srv.Close()

	var out struct {
		Version string `json:"version"`
	}
	c := NewClient(WithMaxRetries(0))
	if err := c.GetJSON(context.Background(), srv.URL, &out); err != nil {
		t.Fatal(err)
	}
	if out.Version != "1.2.3" {
		t.Errorf("version = %q", out.Version)
	}
}

func TestGetText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("21.0.4-tem\n"))
	}))
	defer srv.Close()

	c := NewClient(WithMaxRetries(0))
	body, err := c.GetText(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if body != "21.0.4-tem\n" {
		t.Errorf("body = %q", body)
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(WithMaxRetries(0))
	err := c.GetJSON(context.Background(), srv.URL+"/missing", &struct{}{})
	if err == nil {
		t.Fatal("expected error")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || !httpErr.IsNotFound() {
		t.Fatalf("err = %v, want 404 HTTPError", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("404 should unwrap to ErrNotFound")
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(WithMaxRetries(2))
	if err := c.GetJSON(context.Background(), srv.URL, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestRetryOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(WithMaxRetries(1))
	if err := c.GetJSON(context.Background(), srv.URL, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(WithMaxRetries(3))
	if err := c.GetJSON(context.Background(), srv.URL, &struct{}{}); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (4xx is not retryable)", calls.Load())
	}
}

func TestBreakerTripsAfterRepeatedFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithMaxRetries(0))
	for i := 0; i < 5; i++ {
		if err := c.GetJSON(context.Background(), srv.URL, &struct{}{}); err == nil {
			t.Fatal("expected server error")
		}
	}
	before := calls.Load()

	err := c.GetJSON(context.Background(), srv.URL, &struct{}{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable once the circuit opens", err)
	}
	if calls.Load() != before {
		t.Error("open circuit must not reach the server")
	}
}

func TestNotFoundDoesNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(WithMaxRetries(0))
	for i := 0; i < 10; i++ {
		err := c.GetJSON(context.Background(), srv.URL, &struct{}{})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("call %d: err = %v, want ErrNotFound", i, err)
		}
	}
}

func TestHostOf(t *testing.T) {
	if got := hostOf("https://pypi.org/pypi/ruff/json"); got != "pypi.org" {
		t.Errorf("hostOf = %q", got)
	}
	if got := hostOf("https://crates.io:443/api"); got != "crates.io:443" {
		t.Errorf("hostOf = %q", got)
	}
}

package base

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/infra"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	defer client.Close()

	if client.HTTPClient == nil {
		t.Error("HTTPClient is nil")
	}
	if client.Logger == nil {
		t.Error("Logger is nil")
	}
	if client.Cache == nil {
		t.Error("Cache is nil")
	}
	if client.Dedup == nil {
		t.Error("Dedup is nil")
	}
	if client.Breaker == nil {
		t.Error("Breaker is nil")
	}
	if client.Semaphore == nil {
		t.Error("Semaphore is nil")
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTP := &http.Client{Timeout: 60 * time.Second}
	customLogger := slog.Default()

	client := NewClient(
		WithHTTPClient(customHTTP),
		WithLogger(customLogger),
	)
	defer client.Close()

	if client.HTTPClient != customHTTP {
		t.Error("custom HTTP client was not set")
	}
	if client.Logger != customLogger {
		t.Error("custom logger was not set")
	}
}

func TestClient_DefaultValues(t *testing.T) {
	client := NewClient()
	defer client.Close()

	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}

	if cap(client.Semaphore) != MaxConcurrentFetches {
		t.Errorf("semaphore capacity = %d, want %d", cap(client.Semaphore), MaxConcurrentFetches)
	}
}

func TestClient_WithTimeout(t *testing.T) {
	client := NewClient(WithTimeout(60 * time.Second))
	defer client.Close()

	if client.HTTPClient.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", client.HTTPClient.Timeout)
	}
}

func TestClient_WithCache(t *testing.T) {
	customCache := infra.NewResponseCache(500)
	defer customCache.Close()

	client := NewClient(WithCache(customCache))
	defer client.Close()

	if client.Cache != customCache {
		t.Error("custom cache was not set")
	}
}

func TestClient_AcquireReleaseSlot(t *testing.T) {
	client := NewClient()
	defer client.Close()

	ctx := context.Background()

	if err := client.AcquireSlot(ctx); err != nil {
		t.Fatalf("AcquireSlot failed: %v", err)
	}

	client.ReleaseSlot()
}

func TestClient_AcquireSlot_ContextCanceled(t *testing.T) {
	// Client with a single, already occupied slot
	client := &Client{
		Semaphore: make(chan struct{}, 1),
	}

	ctx, cancel := context.WithCancel(context.Background())

	client.Semaphore <- struct{}{}
	cancel()

	err := client.AcquireSlot(ctx)
	if err == nil {
		t.Error("expected error when context is canceled")
	}
}

func TestClient_BreakerStats(t *testing.T) {
	client := NewClient()
	defer client.Close()

	stats := client.BreakerStats()
	if stats.State != "closed" {
		t.Errorf("initial circuit breaker state = %q, want 'closed'", stats.State)
	}
}

func TestClient_BreakerSuccessResetsFailures(t *testing.T) {
	client := NewClient()
	defer client.Close()

	client.Breaker.RecordFailure()
	client.Breaker.RecordFailure()
	client.Breaker.RecordSuccess()

	stats := client.BreakerStats()
	if stats.ConsecutiveFails != 0 {
		t.Errorf("consecutive fails = %d, want 0 after success", stats.ConsecutiveFails)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"longer than max length", 10, "longer tha..."},
		{"", 5, ""},
		{"abc", 0, "..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestReadAndClose(t *testing.T) {
	t.Run("normal response", func(t *testing.T) {
		body := io.NopCloser(strings.NewReader("test response body"))
		resp := &http.Response{
			Body: body,
		}

		data, err := readAndClose(resp)
		if err != nil {
			t.Fatalf("readAndClose failed: %v", err)
		}

		if string(data) != "test response body" {
			t.Errorf("got %q, want 'test response body'", string(data))
		}
	})

	t.Run("empty response", func(t *testing.T) {
		body := io.NopCloser(strings.NewReader(""))
		resp := &http.Response{
			Body: body,
		}

		data, err := readAndClose(resp)
		if err != nil {
			t.Fatalf("readAndClose failed: %v", err)
		}

		if len(data) != 0 {
			t.Errorf("expected empty data, got %d bytes", len(data))
		}
	})
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header not set")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	body, statusCode, err := client.Fetch(context.Background(), FetchConfig{
		URL:      server.URL,
		MaxRetry: 1,
	})

	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("status code = %d, want 200", statusCode)
	}
	if string(body) != `{"status":"ok"}` {
		t.Errorf("body = %q, want '{\"status\":\"ok\"}'", string(body))
	}
}

func TestFetch_CustomUserAgent(t *testing.T) {
	var receivedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	_, _, _ = client.Fetch(context.Background(), FetchConfig{
		URL:       server.URL,
		UserAgent: "custom-agent/1.0",
		MaxRetry:  1,
	})

	if receivedUA != "custom-agent/1.0" {
		t.Errorf("User-Agent = %q, want 'custom-agent/1.0'", receivedUA)
	}
}

func TestFetch_DefaultUserAgent(t *testing.T) {
	var receivedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	_, _, _ = client.Fetch(context.Background(), FetchConfig{
		URL:      server.URL,
		MaxRetry: 1,
	})

	if receivedUA != defaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", receivedUA, defaultUserAgent)
	}
}

func TestFetch_CircuitOpen(t *testing.T) {
	client := NewClient()
	defer client.Close()

	// Open the circuit breaker
	for range 10 {
		client.Breaker.RecordFailure()
	}

	_, _, err := client.Fetch(context.Background(), FetchConfig{
		URL: "http://example.com",
	})

	if err == nil {
		t.Fatal("expected error when circuit is open")
	}

	var circuitErr *infra.ErrCircuitOpen
	if !errors.As(err, &circuitErr) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
}

func TestFetch_ServerError_Retries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("server error"))
		} else {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
		}
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	body, statusCode, err := client.Fetch(context.Background(), FetchConfig{
		URL:      server.URL,
		MaxRetry: 5,
	})

	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("status code = %d, want 200", statusCode)
	}
	if string(body) != "success" {
		t.Errorf("body = %q, want 'success'", string(body))
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestFetch_RateLimited(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
		} else {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
		}
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	body, statusCode, err := client.Fetch(ctx, FetchConfig{
		URL:      server.URL,
		MaxRetry: 3,
	})

	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("status code = %d, want 200", statusCode)
	}
	if string(body) != "success" {
		t.Errorf("body = %q, want 'success'", string(body))
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, _, err := client.Fetch(ctx, FetchConfig{
		URL:      server.URL,
		MaxRetry: 1,
	})

	if err == nil {
		t.Error("expected error when context is canceled")
	}
}

func TestFetch_AllRetriesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("always fails"))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	_, _, err := client.Fetch(context.Background(), FetchConfig{
		URL:      server.URL,
		MaxRetry: 2,
	})

	if err == nil {
		t.Error("expected error when all retries fail")
	}
}

func TestFetch_NotFound(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	body, statusCode, err := client.Fetch(context.Background(), FetchConfig{
		URL:      server.URL,
		MaxRetry: 3,
	})

	// 404 is not retried, the status and body go back to the caller
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if statusCode != http.StatusNotFound {
		t.Errorf("status code = %d, want 404", statusCode)
	}
	if string(body) != "not found" {
		t.Errorf("body = %q, want 'not found'", string(body))
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

package vatify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOptions_Defaults(t *testing.T) {
	cfg := newClientConfig(nil)

	if cfg.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", cfg.baseURL, DefaultBaseURL)
	}
	if cfg.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", cfg.timeout, DefaultTimeout)
	}
	if cfg.httpClient != nil {
		t.Error("httpClient should default to nil")
	}
}

func TestOptions_Apply(t *testing.T) {
	custom := &http.Client{}
	cfg := newClientConfig([]Option{
		WithBaseURL("https://example.com"),
		WithTimeout(3 * time.Second),
		WithHTTPClient(custom),
		WithUserAgent("agent/2"),
	})

	if cfg.baseURL != "https://example.com" {
		t.Errorf("baseURL = %s", cfg.baseURL)
	}
	if cfg.timeout != 3*time.Second {
		t.Errorf("timeout = %v", cfg.timeout)
	}
	if cfg.httpClient != custom {
		t.Error("httpClient not applied")
	}
	if cfg.userAgent != "agent/2" {
		t.Errorf("userAgent = %s", cfg.userAgent)
	}
}

func TestWithUserAgent_OnTheWire(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "billing-service/4.2" {
			t.Errorf("User-Agent = %s, want billing-service/4.2", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(`[{"rate_type":"standard","rate_percent":19.0}]`))
	}))
	defer server.Close()

	client, _ := New("test-key",
		WithBaseURL(server.URL),
		WithUserAgent("billing-service/4.2"),
	)
	defer client.Close()

	if _, err := client.Rates(context.Background(), "DE"); err != nil {
		t.Fatalf("Rates() error = %v", err)
	}
}

func TestWithHTTPClient_Used(t *testing.T) {
	var used bool
	custom := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			used = true
			return http.DefaultTransport.RoundTrip(req)
		}),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL), WithHTTPClient(custom))
	defer client.Close()

	if _, err := client.Rates(context.Background(), "DE"); err != nil {
		t.Fatalf("Rates() error = %v", err)
	}
	if !used {
		t.Error("custom HTTP client was not used")
	}
}

func TestWithHTTPClient_TimeoutStillApplies(t *testing.T) {
	var used bool
	custom := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			used = true
			return http.DefaultTransport.RoundTrip(req)
		}),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := New("test-key",
		WithBaseURL(server.URL),
		WithHTTPClient(custom),
		WithTimeout(50*time.Millisecond),
	)
	defer client.Close()

	_, err := client.Rates(context.Background(), "DE")
	var vErr *Error
	if !errors.As(err, &vErr) || vErr.Origin != OriginTransport {
		t.Fatalf("Rates() error = %v, want transport-origin timeout", err)
	}
	if !used {
		t.Error("custom HTTP client was not used")
	}
	if custom.Timeout != 0 {
		t.Errorf("caller's client Timeout = %v, want untouched", custom.Timeout)
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

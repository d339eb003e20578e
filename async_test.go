package vatify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAsync_ValidateVAT(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vat_number":"DE123456789","valid":true,"country_code":"DE","name":"Example GmbH"}`))
	}))
	defer server.Close()

	client, err := NewAsync("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewAsync() error = %v", err)
	}
	defer client.AClose()

	call := client.ValidateVAT(context.Background(), "DE123456789")
	res, err := call.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if !res.Valid || res.CountryCode != "DE" {
		t.Errorf("result = %+v, want valid DE", res)
	}
}

func TestAsync_ConcurrentCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cc := strings.TrimPrefix(r.URL.Path, "/v1/rates/")
		fmt.Fprintf(w, `[{"rate_type":"standard","rate_percent":19.0,"country_code":%q}]`, cc)
	}))
	defer server.Close()

	client, _ := NewAsync("test-key", WithBaseURL(server.URL))
	defer client.AClose()

	ctx := context.Background()
	countries := []string{"DE", "FR", "IT", "ES", "NL"}
	calls := make([]*Call[[]RateEntry], len(countries))
	for i, cc := range countries {
		calls[i] = client.Rates(ctx, cc)
	}

	for i, call := range calls {
		entries, err := call.Wait(ctx)
		if err != nil {
			t.Fatalf("Wait(%s) error = %v", countries[i], err)
		}
		if len(entries) != 1 || entries[0].CountryCode != countries[i] {
			t.Errorf("entries for %s = %+v", countries[i], entries)
		}
	}
}

func TestAsync_Calculate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"country_code":"DE","rate_percent":7.0}`))
	}))
	defer server.Close()

	client, _ := NewAsync("test-key", WithBaseURL(server.URL))
	defer client.AClose()

	call := client.Calculate(context.Background(), CalculationParams{
		CountryCode: "DE",
		RateType:    RateReduced,
		SupplyDate:  "2026-01-15",
	})
	res, err := call.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if res.RatePercent != 7.0 {
		t.Errorf("RatePercent = %v, want 7.0", res.RatePercent)
	}
}

func TestAsync_CancelledCall(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, _ := NewAsync("test-key", WithBaseURL(server.URL))
	defer client.AClose()

	ctx, cancel := context.WithCancel(context.Background())
	call := client.Rates(ctx, "DE")

	<-started
	cancel()

	_, err := call.Wait(context.Background())
	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Wait() error = %T, want *Error", err)
	}
	if vErr.Origin != OriginTransport {
		t.Errorf("Origin = %s, want %s", vErr.Origin, OriginTransport)
	}

	// The shared connection pool must survive a cancelled call.
	server2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"rate_type":"standard","rate_percent":19.0}]`))
	}))
	defer server2.Close()

	client2, _ := NewAsync("test-key", WithBaseURL(server2.URL))
	defer client2.AClose()
	if _, err := client2.Rates(context.Background(), "DE").Wait(context.Background()); err != nil {
		t.Errorf("Rates() after cancellation error = %v", err)
	}
}

func TestAsync_WaitRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, _ := NewAsync("test-key", WithBaseURL(server.URL))
	defer client.AClose()

	call := client.Rates(context.Background(), "DE")

	waitCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := call.Wait(waitCtx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want DeadlineExceeded in chain", err)
	}
}

func TestAsync_Done(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"rate_type":"standard","rate_percent":19.0}]`))
	}))
	defer server.Close()

	client, _ := NewAsync("test-key", WithBaseURL(server.URL))
	defer client.AClose()

	call := client.Rates(context.Background(), "DE")

	select {
	case <-call.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("call did not resolve")
	}

	entries, err := call.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d, want 1", len(entries))
	}
}

func TestAClose_Idempotent(t *testing.T) {
	client, _ := NewAsync("test-key")

	if err := client.AClose(); err != nil {
		t.Errorf("first AClose() error = %v", err)
	}
	if err := client.AClose(); err != nil {
		t.Errorf("second AClose() error = %v", err)
	}
}

func TestAsync_UseAfterClose(t *testing.T) {
	client, _ := NewAsync("test-key")
	client.AClose()

	call := client.ValidateVAT(context.Background(), "DE123456789")
	_, err := call.Wait(context.Background())
	if !errors.Is(err, ErrClientClosed) {
		t.Errorf("error = %v, want ErrClientClosed", err)
	}
}

func TestNewAsync_RequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := NewAsync("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("NewAsync() error = %v, want ErrMissingAPIKey", err)
	}
}

package vatify

import (
	"context"
	"sync"

	"github.com/vatify/client-go/internal/api"
)

// Call is a pending asynchronous operation. It resolves exactly once, with
// either a result or an error, never both.
type Call[T any] struct {
	done   chan struct{}
	result T
	err    error
}

func newCall[T any]() *Call[T] {
	return &Call[T]{done: make(chan struct{})}
}

func (c *Call[T]) resolve(result T, err error) {
	c.result = result
	c.err = err
	close(c.done)
}

// Done returns a channel closed when the call has resolved, for use in
// select loops.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call resolves or ctx is cancelled. Cancelling the
// wait does not cancel the in-flight request; cancel the context passed to
// the originating method for that.
func (c *Call[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.result, c.err
	case <-ctx.Done():
		var zero T
		return zero, wrapError(ctx.Err())
	}
}

// AsyncClient mirrors Client's method surface without blocking the caller:
// each method returns immediately with a Call that resolves when the
// single underlying round trip completes. Calls issued concurrently
// proceed independently over one shared connection pool, and no ordering
// is guaranteed across them. Cancelling one call's context never affects
// the shared pool or other in-flight calls.
type AsyncClient struct {
	apiClient *api.Client

	mu     sync.RWMutex
	closed bool
}

// NewAsync creates a new asynchronous Vatify client. API key resolution is
// identical to New.
func NewAsync(apiKey string, opts ...Option) (*AsyncClient, error) {
	apiClient, err := buildAPIClient(apiKey, newClientConfig(opts))
	if err != nil {
		return nil, err
	}
	return &AsyncClient{apiClient: apiClient}, nil
}

func (c *AsyncClient) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return configError(ErrClientClosed)
	}
	return nil
}

// ValidateVAT starts a validation call and returns immediately.
func (c *AsyncClient) ValidateVAT(ctx context.Context, vatNumber string) *Call[*ValidationResult] {
	call := newCall[*ValidationResult]()
	if err := c.checkClosed(); err != nil {
		call.resolve(nil, err)
		return call
	}
	if vatNumber == "" {
		call.resolve(nil, &Error{Origin: OriginConfig, Message: "vat number must not be empty"})
		return call
	}

	go func() {
		resp, err := c.apiClient.ValidateVAT(ctx, vatNumber)
		if err != nil {
			call.resolve(nil, wrapError(err))
			return
		}
		call.resolve(newValidationResult(resp), nil)
	}()
	return call
}

// Calculate starts a calculation call and returns immediately.
func (c *AsyncClient) Calculate(ctx context.Context, params CalculationParams) *Call[*CalculationResult] {
	call := newCall[*CalculationResult]()
	if err := c.checkClosed(); err != nil {
		call.resolve(nil, err)
		return call
	}
	if err := checkCalculationParams(params); err != nil {
		call.resolve(nil, err)
		return call
	}

	go func() {
		resp, err := c.apiClient.Calculate(ctx, params.request())
		if err != nil {
			call.resolve(nil, wrapError(err))
			return
		}
		call.resolve(newCalculationResult(resp), nil)
	}()
	return call
}

// Rates starts a rate-listing call and returns immediately.
func (c *AsyncClient) Rates(ctx context.Context, countryCode string) *Call[[]RateEntry] {
	call := newCall[[]RateEntry]()
	if err := c.checkClosed(); err != nil {
		call.resolve(nil, err)
		return call
	}
	if countryCode == "" {
		call.resolve(nil, &Error{Origin: OriginConfig, Message: "country code must not be empty"})
		return call
	}

	go func() {
		payloads, err := c.apiClient.Rates(ctx, countryCode)
		if err != nil {
			call.resolve(nil, wrapError(err))
			return
		}
		call.resolve(newRateEntries(payloads), nil)
	}()
	return call
}

// AClose releases the underlying connection resources. It is idempotent;
// calls issued after AClose resolve with an error matching ErrClientClosed.
// In-flight calls are left to complete.
func (c *AsyncClient) AClose() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.Close()
	return nil
}

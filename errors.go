package vatify

import (
	"errors"
	"fmt"

	"github.com/vatify/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided and the
	// VATIFY_API_KEY environment variable is unset.
	ErrMissingAPIKey = errors.New("API key is required: pass one explicitly or set VATIFY_API_KEY")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidResponse is returned when a success body is malformed or
	// missing required fields.
	ErrInvalidResponse = errors.New("invalid response body")
)

// Origin tags which layer produced an Error.
type Origin string

const (
	// OriginConfig marks failures detected before any network attempt:
	// missing API key, empty arguments, use after Close.
	OriginConfig Origin = "config"
	// OriginTransport marks network-level failures and malformed response
	// bodies. StatusCode is always zero for transport errors.
	OriginTransport Origin = "transport"
	// OriginService marks non-2xx responses from the Vatify service.
	OriginService Origin = "service"
)

// Error is the single error type surfaced by the SDK. Every failure path
// (configuration, transport, service) funnels into it; callers distinguish
// origins via the Origin field or by StatusCode (zero means the request
// never produced a service response).
type Error struct {
	Origin     Origin
	Message    string
	StatusCode int
	Details    map[string]interface{}
	RequestID  string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("vatify: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("vatify: %s", e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// configError builds a config-origin *Error around a sentinel.
func configError(sentinel error) *Error {
	return &Error{
		Origin:  OriginConfig,
		Message: sentinel.Error(),
		Err:     sentinel,
	}
}

// wrapError converts internal API errors to the public Error type.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("service error %d", apiErr.StatusCode)
		}
		return &Error{
			Origin:     OriginService,
			Message:    msg,
			StatusCode: apiErr.StatusCode,
			Details:    apiErr.Details,
			RequestID:  apiErr.RequestID,
			Err:        apiErr,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &Error{
			Origin:    OriginTransport,
			Message:   netErr.Error(),
			RequestID: netErr.RequestID,
			Err:       netErr.Err,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &Error{
			Origin:  OriginTransport,
			Message: decErr.Error(),
			Err:     ErrInvalidResponse,
		}
	}

	return &Error{
		Origin:  OriginTransport,
		Message: err.Error(),
		Err:     err,
	}
}

package api

import "fmt"

// APIError represents a non-2xx response from the Vatify API.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]interface{}
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure: DNS, connection,
// timeout, or context cancellation surfaced by the HTTP client.
type NetworkError struct {
	Err       error
	URL       string
	RequestID string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a malformed or schema-invalid success body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

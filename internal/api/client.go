package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Default client configuration.
const (
	DefaultBaseURL = "https://api.vatifytax.app"
	DefaultTimeout = 10 * time.Second
)

// defaultUserAgent identifies this SDK to the Vatify service.
const defaultUserAgent = "vatify-go/0.1"

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// validator is implemented by response types that carry required fields.
type validator interface {
	validate() error
}

// Do performs one request against the API. A non-nil body is JSON-encoded;
// a non-nil result receives the decoded response body. Exactly one request
// goes out per call.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: url, RequestID: requestID}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp, requestID)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &DecodeError{Err: err}
		}
		if v, ok := result.(validator); ok {
			if err := v.validate(); err != nil {
				return &DecodeError{Err: err}
			}
		}
	}

	return nil
}

// parseErrorResponse turns a non-2xx response into an *APIError. A JSON
// object body becomes structured Details; anything else becomes the message.
func parseErrorResponse(resp *http.Response, requestID string) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
	}

	var details map[string]interface{}
	if err := json.Unmarshal(body, &details); err == nil && details != nil {
		apiErr.Details = details
		if msg, ok := details["error"].(string); ok {
			apiErr.Message = msg
		} else if msg, ok := details["message"].(string); ok {
			apiErr.Message = msg
		}
		return apiErr
	}

	apiErr.Message = string(body)
	return apiErr
}

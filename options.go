package vatify

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the production Vatify endpoint.
const DefaultBaseURL = "https://api.vatifytax.app"

// DefaultTimeout applies when no WithTimeout option is given.
const DefaultTimeout = 10 * time.Second

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

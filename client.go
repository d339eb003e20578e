package vatify

import (
	"context"
	"os"
	"sync"

	"github.com/vatify/client-go/internal/api"
)

// EnvAPIKey is the environment variable consulted when no API key is
// passed explicitly.
const EnvAPIKey = "VATIFY_API_KEY"

// resolveAPIKey applies the configuration-resolution order: explicit
// argument first, then the environment. It never touches the network.
func resolveAPIKey(apiKey string) (string, error) {
	if apiKey != "" {
		return apiKey, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", configError(ErrMissingAPIKey)
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	key, err := resolveAPIKey(apiKey)
	if err != nil {
		return nil, err
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}

	apiClient, err := api.New(key, apiOpts...)
	if err != nil {
		return nil, wrapError(err)
	}

	if cfg.httpClient != nil {
		httpClient := cfg.httpClient
		if cfg.timeout > 0 {
			// Apply the configured timeout without mutating the caller's client.
			clone := *httpClient
			clone.Timeout = cfg.timeout
			httpClient = &clone
		}
		apiClient.SetHTTPClient(httpClient)
	}

	return apiClient, nil
}

func newClientConfig(opts []Option) *clientConfig {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Client is the synchronous Vatify client. Each method performs exactly
// one blocking round trip against the service. A Client is safe for use
// from multiple goroutines; it holds no per-call state.
type Client struct {
	apiClient *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new Vatify client. An empty apiKey falls back to the
// VATIFY_API_KEY environment variable; if both are empty, a config-origin
// error matching ErrMissingAPIKey is returned before any network attempt.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiClient, err := buildAPIClient(apiKey, newClientConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Client{apiClient: apiClient}, nil
}

// checkClosed returns a config-origin error if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return configError(ErrClientClosed)
	}
	return nil
}

// ValidateVAT validates a VAT number against the service. Format checking
// beyond non-emptiness is delegated to the service.
func (c *Client) ValidateVAT(ctx context.Context, vatNumber string) (*ValidationResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if vatNumber == "" {
		return nil, &Error{Origin: OriginConfig, Message: "vat number must not be empty"}
	}

	resp, err := c.apiClient.ValidateVAT(ctx, vatNumber)
	if err != nil {
		return nil, wrapError(err)
	}
	return newValidationResult(resp), nil
}

// Calculate computes the VAT treatment for the given parameters. Both the
// basic (country code, rate type, supply date) and extended (amount,
// basis, parties, classification) forms are accepted.
func (c *Client) Calculate(ctx context.Context, params CalculationParams) (*CalculationResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if err := checkCalculationParams(params); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.Calculate(ctx, params.request())
	if err != nil {
		return nil, wrapError(err)
	}
	return newCalculationResult(resp), nil
}

// Rates fetches every VAT rate of a country as a fully materialized slice,
// preserving the order returned by the service.
func (c *Client) Rates(ctx context.Context, countryCode string) ([]RateEntry, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if countryCode == "" {
		return nil, &Error{Origin: OriginConfig, Message: "country code must not be empty"}
	}

	payloads, err := c.apiClient.Rates(ctx, countryCode)
	if err != nil {
		return nil, wrapError(err)
	}
	return newRateEntries(payloads), nil
}

// Close releases the underlying connection resources. It is idempotent;
// calls after Close return an error matching ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.Close()
	return nil
}

func checkCalculationParams(params CalculationParams) error {
	if params.CountryCode != "" {
		return nil
	}
	if params.Supplier != nil && params.Customer != nil {
		return nil
	}
	return &Error{
		Origin:  OriginConfig,
		Message: "calculation requires a country code or a supplier/customer pair",
	}
}

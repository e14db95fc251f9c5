package openexchange

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Config carries everything the provider needs to reach the API. Passed in
// explicitly so tests can point the provider at a mock endpoint.
type Config struct {
	BaseURL    string
	AppID      string
	MaxRetries int           // retry budget per historical date
	Timeout    time.Duration // per-request timeout
}

const (
	defaultMaxRetries = 5
	defaultTimeout    = 30 * time.Second
)

// newClient builds the resty client shared by all concurrent fetches.
// Retries are left to the fetcher's own loop, not resty's.
func newClient(cfg Config) *resty.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// New constructs a Provider for the configured endpoint.
func New(cfg Config) *Provider {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &Provider{
		client:     newClient(cfg),
		appID:      cfg.AppID,
		maxRetries: maxRetries,
		sleep:      time.Sleep,
	}
}

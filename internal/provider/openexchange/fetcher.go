package openexchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"fx-data/internal/provider"
)

var (
	// ErrUnauthorized marks a 401 from the API: credentials will not become
	// valid mid-loop, so the fetcher gives up without retrying.
	ErrUnauthorized = errors.New("unauthorized (401), check app id")

	// ErrExhausted marks a date whose retry budget ran out.
	ErrExhausted = errors.New("retry budget exhausted")

	errNoRates = errors.New("payload has no rates mapping")
)

// backoffCap bounds worst-case latency per date.
const backoffCap = 60 * time.Second

// backoff returns min(2^attempt, 60) seconds.
func backoff(attempt int) time.Duration {
	if attempt >= 6 { // 2^6 already exceeds the cap
		return backoffCap
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > backoffCap {
		return backoffCap
	}
	return d
}

// Provider fetches exchange-rate snapshots from an Open Exchange Rates style
// API. One Provider (and its underlying connection pool) is shared read-only
// by all concurrent fetches.
type Provider struct {
	client     *resty.Client
	appID      string
	maxRetries int

	sleep func(d time.Duration) // backoff sleeper, injectable in tests

	// LogFunc, when set, receives progress lines instead of slog (fan-in).
	LogFunc func(msg string)
}

// SetLogFunc installs (or clears, with nil) the fan-in log sink.
func (p *Provider) SetLogFunc(fn func(msg string)) { p.LogFunc = fn }

var _ provider.RateProvider = (*Provider)(nil)
var _ provider.LogSink = (*Provider)(nil)

func (p *Provider) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.LogFunc != nil {
		p.LogFunc(msg)
	} else {
		slog.Info(msg)
	}
}

// GetName returns the provider name.
func (p *Provider) GetName() string { return "OpenExchangeRates" }

// Close closes connections.
func (p *Provider) Close() error {
	p.client.GetClient().CloseIdleConnections()
	return nil
}

// FetchHistorical fetches the snapshot for one calendar day, retrying rate
// limits and transport errors with exponential backoff. The outcome of each
// attempt is one of: success (200, loop ends), terminal (401 or any other
// unexpected status, no retry), or retryable (429, transport error).
// All failures are reported as an error; callers absorb them into
// absence-of-data for that date without aborting sibling fetches.
func (p *Provider) FetchHistorical(ctx context.Context, date time.Time) (*provider.RatesPayload, error) {
	day := date.UTC().Format("2006-01-02")

	for attempt := 0; attempt < p.maxRetries; attempt++ {
		resp, err := p.client.R().
			SetContext(ctx).
			SetQueryParam("app_id", p.appID).
			Get("historical/" + day + ".json")
		if err != nil {
			// transport-level failure: same backoff as rate limiting
			wait := backoff(attempt)
			p.logf("[%s] fetch error: %v, retrying in %s", day, err, wait)
			p.sleep(wait)
			continue
		}

		switch resp.StatusCode() {
		case http.StatusOK:
			payload, err := decodePayload(resp.Body())
			if err != nil {
				p.logf("[%s] malformed payload: %v", day, err)
				return nil, fmt.Errorf("malformed payload for %s: %w", day, err)
			}
			return payload, nil
		case http.StatusUnauthorized:
			p.logf("[%s] unauthorized request (401), check app id", day)
			return nil, fmt.Errorf("fetch %s: %w", day, ErrUnauthorized)
		case http.StatusTooManyRequests:
			wait := backoff(attempt)
			p.logf("[%s] rate limit hit (429), retrying in %s", day, wait)
			p.sleep(wait)
		default:
			p.logf("[%s] unexpected status %d", day, resp.StatusCode())
			return nil, fmt.Errorf("fetch %s: status %d", day, resp.StatusCode())
		}
	}
	return nil, fmt.Errorf("fetch %s after %d attempts: %w", day, p.maxRetries, ErrExhausted)
}

// FetchLatest fetches the most recent snapshot. Single attempt, no retries.
func (p *Provider) FetchLatest(ctx context.Context) (*provider.RatesPayload, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("app_id", p.appID).
		Get("latest.json")
	if err != nil {
		p.logf("[latest] fetch error: %v", err)
		return nil, fmt.Errorf("fetch latest: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		p.logf("[latest] unexpected status %d", resp.StatusCode())
		return nil, fmt.Errorf("fetch latest: status %d", resp.StatusCode())
	}
	payload, err := decodePayload(resp.Body())
	if err != nil {
		p.logf("[latest] malformed payload: %v", err)
		return nil, fmt.Errorf("malformed latest payload: %w", err)
	}
	return payload, nil
}

package openexchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesBody = `{"base":"USD","timestamp":1708257600,"rates":{"EUR":1.12,"GBP":0.85}}`

// newTestProvider points a provider at srv and replaces the backoff sleeper
// with a recorder so tests observe delays instead of waiting them out.
func newTestProvider(srv *httptest.Server, maxRetries int) (*Provider, *[]time.Duration) {
	p := New(Config{
		BaseURL:    srv.URL,
		AppID:      "test-app-id",
		MaxRetries: maxRetries,
		Timeout:    5 * time.Second,
	})
	var sleeps []time.Duration
	p.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return p, &sleeps
}

func TestFetchHistoricalSuccess(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/historical/2024-02-18.json", r.URL.Path)
		assert.Equal(t, "test-app-id", r.URL.Query().Get("app_id"))
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	p, sleeps := newTestProvider(srv, 5)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "USD", payload.Base)
	assert.Equal(t, int64(1708257600), payload.Timestamp)
	assert.Equal(t, map[string]float64{"EUR": 1.12, "GBP": 0.85}, payload.Rates)
	assert.Equal(t, int64(1), requests.Load())
	assert.Empty(t, *sleeps)
}

func TestFetchHistoricalUnauthorizedNoRetry(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p, sleeps := newTestProvider(srv, 5)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, payload)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int64(1), requests.Load(), "401 must not be retried")
	assert.Empty(t, *sleeps)
}

func TestFetchHistoricalRateLimitThenSuccess(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	p, sleeps := newTestProvider(srv, 5)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, int64(2), requests.Load())
	// first retry backs off min(2^0, 60) = 1s
	assert.Equal(t, []time.Duration{1 * time.Second}, *sleeps)
}

func TestFetchHistoricalRateLimitExhausted(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p, sleeps := newTestProvider(srv, 3)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, payload)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, int64(3), requests.Load())
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, *sleeps)
}

func TestFetchHistoricalServerErrorTerminal(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, sleeps := newTestProvider(srv, 5)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, payload)
	require.Error(t, err)
	assert.Equal(t, int64(1), requests.Load(), "non-429 errors are terminal")
	assert.Empty(t, *sleeps)
}

func TestFetchHistoricalMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base": 12`))
	}))
	defer srv.Close()

	p, _ := newTestProvider(srv, 5)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, payload)
	require.Error(t, err)
}

func TestFetchHistoricalTransportErrorRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ratesBody))
	}))
	srv.Close() // connection refused from the start

	p, sleeps := newTestProvider(srv, 2)
	payload, err := p.FetchHistorical(context.Background(), time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, payload)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *sleeps)
}

func TestFetchLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest.json", r.URL.Path)
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	p, _ := newTestProvider(srv, 5)
	payload, err := p.FetchLatest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, map[string]float64{"EUR": 1.12, "GBP": 0.85}, payload.Rates)
}

func TestFetchLatestNon200(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, sleeps := newTestProvider(srv, 5)
	payload, err := p.FetchLatest(context.Background())
	assert.Nil(t, payload)
	require.Error(t, err)
	assert.Equal(t, int64(1), requests.Load(), "latest has no retry loop")
	assert.Empty(t, *sleeps)
}

func TestBackoffCapped(t *testing.T) {
	assert.Equal(t, 1*time.Second, backoff(0))
	assert.Equal(t, 2*time.Second, backoff(1))
	assert.Equal(t, 32*time.Second, backoff(5))
	assert.Equal(t, 60*time.Second, backoff(6))
	assert.Equal(t, 60*time.Second, backoff(40))
}

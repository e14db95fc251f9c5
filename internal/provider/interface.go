package provider

import (
	"context"
	"time"
)

// RatesPayload is the provider-agnostic shape of one rates response.
// A nil *RatesPayload means absence-of-data for the requested date.
type RatesPayload struct {
	Base      string
	Timestamp int64 // epoch seconds; 0 when the source carried none
	Rates     map[string]float64
}

// RateProvider is the abstraction used by the application when talking to a
// rates source. Implementations own their retry policy and resource cleanup.
type RateProvider interface {
	// FetchHistorical fetches the rates snapshot for one calendar day.
	FetchHistorical(ctx context.Context, date time.Time) (*RatesPayload, error)

	// FetchLatest fetches the most recent rates snapshot. No retry loop.
	FetchLatest(ctx context.Context) (*RatesPayload, error)

	GetName() string
	Close() error
}

// LogSink is implemented by providers that support fan-in logging. When a log
// func is set the provider sends its progress lines there instead of slog.
type LogSink interface {
	SetLogFunc(fn func(msg string))
}

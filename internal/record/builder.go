package record

import (
	"time"

	"fx-data/internal/model"
	"fx-data/internal/provider"
)

const (
	// SourceAPIVersion is stamped into every record.
	SourceAPIVersion = "v1"

	// DefaultBaseCurrency is assumed when the payload carries no base.
	DefaultBaseCurrency = "USD"

	dayFormat       = "2006-01-02"
	retrievalFormat = "2006-01-02 15:04:05"
)

// BuildRecords flattens one rates payload into per-currency records enriched
// with calendar metadata. now is the processing timestamp: it supplies
// retrieval_time and the fallback date when the payload has no timestamp.
// A nil payload contributes zero records. Iteration order over the rates map
// is not deterministic and callers must not rely on it.
func BuildRecords(p *provider.RatesPayload, now time.Time) []model.ExchangeRateRecord {
	if p == nil {
		return nil
	}

	base := p.Base
	if base == "" {
		base = DefaultBaseCurrency
	}

	now = now.UTC()
	date := now
	if p.Timestamp != 0 {
		date = time.Unix(p.Timestamp, 0).UTC()
	}
	dateStr := date.Format(dayFormat)
	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	retrievalTime := now.Format(retrievalFormat)

	records := make([]model.ExchangeRateRecord, 0, len(p.Rates))
	for currency, rate := range p.Rates {
		records = append(records, model.ExchangeRateRecord{
			ID:               GenerateID(dateStr, currency, rate),
			Date:             dateStr,
			BaseCurrency:     base,
			Currency:         currency,
			ExchangeRate:     rate,
			RetrievalTime:    retrievalTime,
			SourceAPIVersion: SourceAPIVersion,
			DayOfWeek:        weekday.String(),
			IsWeekend:        isWeekend,
			Year:             int32(date.Year()),
			Month:            int32(date.Month()),
		})
	}
	return records
}

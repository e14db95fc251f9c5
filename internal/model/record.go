package model

// ExchangeRateRecord is one flattened (date, currency) rate observation.
// Dùng chung cho builder, saver và serialization (json, csv, parquet).
// Immutable once built; written exactly once to its partition file.
type ExchangeRateRecord struct {
	ID               string  `json:"id" parquet:"id"`
	Date             string  `json:"date" parquet:"date"` // YYYY-MM-DD
	BaseCurrency     string  `json:"base_currency" parquet:"base_currency"`
	Currency         string  `json:"currency" parquet:"currency"`
	ExchangeRate     float64 `json:"exchange_rate" parquet:"exchange_rate"`
	RetrievalTime    string  `json:"retrieval_time" parquet:"retrieval_time"` // UTC, "2006-01-02 15:04:05"
	SourceAPIVersion string  `json:"source_api_version" parquet:"source_api_version"`
	DayOfWeek        string  `json:"day_of_week" parquet:"day_of_week"` // Monday..Sunday
	IsWeekend        bool    `json:"is_weekend" parquet:"is_weekend"`
	Year             int32   `json:"year" parquet:"year"`
	Month            int32   `json:"month" parquet:"month"`
}

// PartitionKey identifies the (year, month) output unit a record belongs to.
// Fixed at record creation; a record never moves between partitions.
type PartitionKey struct {
	Year  int32
	Month int32
}

// Partition returns the record's partition key.
func (r ExchangeRateRecord) Partition() PartitionKey {
	return PartitionKey{Year: r.Year, Month: r.Month}
}

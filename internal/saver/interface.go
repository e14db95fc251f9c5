package saver

import (
	"strings"

	"fx-data/internal/model"
)

// RecordSaver is the abstraction for writing one partition's records to a
// single file. High-level (cmd) injects the implementation; the partition
// writer only depends on this interface — DIP.
type RecordSaver interface {
	Save(records []model.ExchangeRateRecord, path string) error
	Extension() string
}

// NewRecordSaver creates an implementation by format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewRecordSaver(format string) RecordSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}

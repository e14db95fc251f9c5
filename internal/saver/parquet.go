package saver

import (
	"github.com/parquet-go/parquet-go"

	"fx-data/internal/model"
)

// ParquetSaver writes one partition as a Parquet file.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(records []model.ExchangeRateRecord, path string) error {
	return parquet.WriteFile(path, records)
}

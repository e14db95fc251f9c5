package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"fx-data/internal/model"
)

// CSVSaver writes one partition as CSV with a header row.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

var csvHeader = []string{
	"id", "date", "base_currency", "currency", "exchange_rate",
	"retrieval_time", "source_api_version", "day_of_week", "is_weekend",
	"year", "month",
}

func (CSVSaver) Save(records []model.ExchangeRateRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write([]string{
			r.ID,
			r.Date,
			r.BaseCurrency,
			r.Currency,
			floatStr(r.ExchangeRate),
			r.RetrievalTime,
			r.SourceAPIVersion,
			r.DayOfWeek,
			strconv.FormatBool(r.IsWeekend),
			strconv.FormatInt(int64(r.Year), 10),
			strconv.FormatInt(int64(r.Month), 10),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

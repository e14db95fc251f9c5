package saver

import (
	"encoding/json"
	"os"

	"fx-data/internal/model"
)

// JSONSaver writes one partition as a JSON array (indented).
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(records []model.ExchangeRateRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

package app

import (
	"fmt"

	"fx-data/internal/provider/openexchange"
	"fx-data/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideRecordSaver creates a RecordSaver from config (for Wire).
// Returns an error if SaveFormat is not supported.
func ProvideRecordSaver(cfg *Config) (saver.RecordSaver, error) {
	rs := saver.NewRecordSaver(cfg.SaveFormat)
	if rs == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return rs, nil
}

// ProvideRateProvider creates the Open Exchange Rates provider (for Wire).
// Caller must call Close() when shutting down.
func ProvideRateProvider(cfg *Config) (*openexchange.Provider, error) {
	if cfg.AppID == "" {
		return nil, fmt.Errorf("OXR_APP_ID not set")
	}
	return openexchange.New(openexchange.Config{
		BaseURL:    cfg.BaseURL,
		AppID:      cfg.AppID,
		MaxRetries: cfg.MaxRetries,
		Timeout:    cfg.HTTPTimeout,
	}), nil
}

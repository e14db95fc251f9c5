package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env.
type Config struct {
	BaseURL     string `validate:"required,url"`
	AppID       string `validate:"required"`
	DataDir     string `validate:"required"`
	SaveFormat  string `validate:"required,oneof=csv parquet json"`
	LogLevel    string // debug | info | warn | error
	MaxRetries  int    `validate:"min=1,max=10"`
	HTTPTimeout time.Duration
}

var validate = validator.New()

// LoadConfig reads config from environment and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL:     getEnv("OXR_BASE_URL", "https://openexchangerates.org/api"),
		AppID:       os.Getenv("OXR_APP_ID"),
		DataDir:     getEnv("DATA_DIR", "output"),
		SaveFormat:  getSaveFormat(),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MaxRetries:  5,
		HTTPTimeout: 30 * time.Second,
	}
	if v := os.Getenv("FETCH_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("HTTP_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getSaveFormat() string {
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		return v
	}
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}

// ParseDay validates and parses a YYYY-MM-DD date argument.
func ParseDay(s string) (time.Time, error) {
	if err := validate.Var(s, "required,datetime=2006-01-02"); err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries everything read from the environment. godotenv loads the
// .env file in main before this runs.
type Config struct {
	Port        string
	GinMode     string
	StoreDriver string // "file" or "sqlite"
	DataDir     string
	SQLiteDSN   string
	TaxRate     float64
}

func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", ""),
		StoreDriver: getEnv("STORE_DRIVER", "file"),
		DataDir:     getEnv("DATA_DIR", "data"),
		SQLiteDSN:   getEnv("SQLITE_DSN", "restaurant.db"),
		TaxRate:     0.08,
	}

	if raw := os.Getenv("TAX_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			return Config{}, fmt.Errorf("invalid TAX_RATE %q", raw)
		}
		cfg.TaxRate = rate
	}

	if cfg.StoreDriver != "file" && cfg.StoreDriver != "sqlite" {
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q (want file or sqlite)", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	Port          string
	StorageDriver string
	StorageDir    string
	StorageFile   string
	DatabaseURL   string
}

// StoragePath is where the file driver keeps the employee array.
func (c AppConfig) StoragePath() string {
	return filepath.Join(c.StorageDir, c.StorageFile)
}

func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present
	cfg := AppConfig{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverFile),
		StorageDir:    getEnv("STORAGE_DIR", "data"),
		StorageFile:   getEnv("STORAGE_FILE", "employees.json"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}
	switch cfg.StorageDriver {
	case DriverFile:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return AppConfig{}, fmt.Errorf("missing required env: DATABASE_URL")
		}
	default:
		return AppConfig{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

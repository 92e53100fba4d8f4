// internal/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment holds everything the process needs from its environment.
type Environment struct {
	FDCKey string
	DBPath string
	Host   string
	Port   int
}

// Load reads a .env file if one exists and collects the environment. FDC_KEY
// is required; everything else has a default.
func Load() (*Environment, error) {
	_ = godotenv.Load()

	key := os.Getenv("FDC_KEY")
	if key == "" {
		return nil, errors.New("environment needs FDC_KEY value")
	}

	port, err := strconv.Atoi(GetEnv("PORT", "8012"))
	if err != nil {
		return nil, errors.New("PORT must be an integer")
	}

	return &Environment{
		FDCKey: key,
		DBPath: GetEnv("DB_PATH", "/data/nutrack.db"),
		Host:   GetEnv("HOST", "0.0.0.0"),
		Port:   port,
	}, nil
}

// GetEnv returns the value of key or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

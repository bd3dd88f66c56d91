package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultBaseURL         = "https://api.api-ninjas.com/v1"
	defaultLookupTimeout   = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	Port            string
	APIKey          string
	BaseURL         string
	LookupTimeout   time.Duration
	ShutdownTimeout time.Duration
}

// LoadDotEnv loads a .env file from the working directory when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetDuration parses key as a Go duration ("750ms", "5s").
func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", key, raw)
	}
	return d, nil
}

// Load reads the configuration from the environment. It does not require
// an API key; callers that talk to the provider check it with RequireAPIKey.
func Load() (Config, error) {
	lookupTimeout, err := GetDuration("LOOKUP_TIMEOUT", defaultLookupTimeout)
	if err != nil {
		return Config{}, err
	}

	shutdownTimeout, err := GetDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            Get("PORT", defaultPort),
		APIKey:          Get("AIRPORTS_API_KEY", ""),
		BaseURL:         Get("AIRPORTS_BASE_URL", defaultBaseURL),
		LookupTimeout:   lookupTimeout,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func (c Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return errors.New("AIRPORTS_API_KEY is required")
	}
	return nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL points at the TNM Access products service.
	DefaultAPIBaseURL = "https://viewer.nationalmap.gov/tnmaccess/api"

	// DefaultMaxRecords is the page size requested from the products endpoint.
	DefaultMaxRecords = 25000

	// DefaultHTTPTimeout bounds the catalog query request.
	DefaultHTTPTimeout = 60 * time.Second
)

// AppConfig holds all configuration values for the download CLI
type AppConfig struct {
	APIBaseURL  string        // Base URL of the TNM Access API
	MaxRecords  int           // Maximum number of catalog items requested per query
	HTTPTimeout time.Duration // Timeout applied to the catalog query
	LogLevel    string        // Logging level (DEBUG, INFO, WARN, ERROR)
}

// LoadConfig loads the CLI configuration from environment variables,
// falling back to defaults for anything unset.
// Returns an AppConfig struct or an error if a set variable is malformed.
func LoadConfig() (*AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file could not be loaded: %v", err)
	}

	cfg := &AppConfig{
		APIBaseURL:  DefaultAPIBaseURL,
		MaxRecords:  DefaultMaxRecords,
		HTTPTimeout: DefaultHTTPTimeout,
		LogLevel:    "INFO",
	}

	if v := os.Getenv("TNM_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}

	if v := os.Getenv("TNM_MAX_RECORDS"); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("TNM_MAX_RECORDS must be an integer, got: %s", v)
		}
		cfg.MaxRecords = max
	}

	if v := os.Getenv("TNM_HTTP_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("TNM_HTTP_TIMEOUT_SECONDS must be an integer, got: %s", v)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Validate performs additional validation on the loaded configuration
func (c *AppConfig) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL cannot be empty")
	}

	if c.MaxRecords <= 0 {
		return fmt.Errorf("max records must be a positive integer, got: %d", c.MaxRecords)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got: %s", c.HTTPTimeout)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s. Valid levels are: DEBUG, INFO, WARN, ERROR", c.LogLevel)
	}

	return nil
}

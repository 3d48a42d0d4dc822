package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"volunteerhours/internal/log"
)

const (
	DefaultPort          = "8080"
	DefaultSheetsRange   = "Sheet1!A2:C"
	DefaultSheetsTimeout = 10 * time.Second
)

type Config struct {
	// HTTP Server
	Port string

	// Google Sheets. Both APIKey and SpreadsheetID must be set to read the
	// sheet; otherwise the sample logs are served.
	GoogleSheetsAPIKey        string
	GoogleSheetsSpreadsheetID string
	GoogleSheetsRange         string
	GoogleSheetsEndpoint      string
	SheetsTimeout             time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", DefaultPort),

		GoogleSheetsAPIKey:        getEnv("GOOGLE_SHEETS_API_KEY", ""),
		GoogleSheetsSpreadsheetID: getEnv("GOOGLE_SHEETS_SPREADSHEET_ID", ""),
		GoogleSheetsRange:         getEnv("GOOGLE_SHEETS_RANGE", DefaultSheetsRange),
		GoogleSheetsEndpoint:      getEnv("GOOGLE_SHEETS_ENDPOINT", ""),
		SheetsTimeout:             getEnvDuration("SHEETS_TIMEOUT", DefaultSheetsTimeout),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// SheetsConfigured reports whether both the credential and the spreadsheet ID are set.
func (c *Config) SheetsConfigured() bool {
	return c.GoogleSheetsAPIKey != "" && c.GoogleSheetsSpreadsheetID != ""
}

// Validate validates the configuration and returns an error if invalid.
// Missing Sheets credentials are not an error.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.GoogleSheetsRange) == "" {
		errors = append(errors, "Google Sheets range cannot be empty")
	}

	if c.GoogleSheetsEndpoint != "" {
		if u, err := url.Parse(c.GoogleSheetsEndpoint); err != nil {
			errors = append(errors, fmt.Sprintf("invalid Google Sheets endpoint '%s': %v", c.GoogleSheetsEndpoint, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid Google Sheets endpoint scheme '%s': must be 'http' or 'https'", u.Scheme))
		}
	}

	if c.SheetsTimeout < 100*time.Millisecond {
		errors = append(errors, fmt.Sprintf("invalid sheets timeout %v: must be at least 100ms", c.SheetsTimeout))
	} else if c.SheetsTimeout > 2*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid sheets timeout %v: must be at most 2 minutes", c.SheetsTimeout))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

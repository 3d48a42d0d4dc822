package backend

import (
	"context"

	"volunteerhours/internal/sheets"
)

// BackendResult contains the reader selected for the process.
// Reader is nil in fallback mode, which makes the resolver serve the sample logs.
type BackendResult struct {
	Type   BackendType
	Reader sheets.LogReader
}

// Factory creates backends based on configuration
type Factory interface {
	// CreateBackend creates a backend instance based on the provided config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// Google Sheets specific
	APIKey        string
	SpreadsheetID string
	Range         string
	Endpoint      string
}

// BackendType represents the type of backend
type BackendType string

const (
	SheetsBackend   BackendType = "sheets"
	FallbackBackend BackendType = "fallback"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SheetsBackend, FallbackBackend:
		return true
	default:
		return false
	}
}

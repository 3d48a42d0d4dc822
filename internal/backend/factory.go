package backend

import (
	"context"
	"fmt"

	"volunteerhours/internal/log"
	gsheet "volunteerhours/internal/sheets/google"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) *DefaultFactory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SheetsBackend:
		return f.createSheetsBackend(ctx, config)
	case FallbackBackend:
		f.logger.InfoContext(ctx, "Google Sheets not configured, serving sample logs",
			log.FieldBackend, FallbackBackend)
		return &BackendResult{Type: FallbackBackend}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

// CreateOrFallback creates the configured backend. If the sheets client
// cannot be built the error is logged and the fallback backend is returned.
func (f *DefaultFactory) CreateOrFallback(ctx context.Context, config Config) *BackendResult {
	result, err := f.CreateBackend(ctx, config)
	if err != nil {
		f.logger.ErrorContext(ctx, "Failed to initialize backend, serving sample logs",
			log.FieldError, err,
			log.FieldErrorType, log.ErrorTypeConfiguration,
			log.FieldBackend, config.Type)
		return &BackendResult{Type: FallbackBackend}
	}
	return result
}

func (f *DefaultFactory) createSheetsBackend(ctx context.Context, config Config) (*BackendResult, error) {
	cli, err := gsheet.New(ctx, gsheet.Config{
		APIKey:        config.APIKey,
		SpreadsheetID: config.SpreadsheetID,
		Range:         config.Range,
		Endpoint:      config.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.InfoContext(ctx, "Initialized Google Sheets backend",
		log.FieldBackend, SheetsBackend,
		log.FieldRange, cli.Range())

	return &BackendResult{
		Type:   SheetsBackend,
		Reader: cli,
	}, nil
}

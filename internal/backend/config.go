package backend

import (
	"fmt"

	"volunteerhours/internal/config"
)

// FromAppConfig converts the application config to backend config.
// The sheets backend is selected only when both the API key and the
// spreadsheet ID are present.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := FallbackBackend
	if appConfig.SheetsConfigured() {
		backendType = SheetsBackend
	}

	return Config{
		Type:          backendType,
		APIKey:        appConfig.GoogleSheetsAPIKey,
		SpreadsheetID: appConfig.GoogleSheetsSpreadsheetID,
		Range:         appConfig.GoogleSheetsRange,
		Endpoint:      appConfig.GoogleSheetsEndpoint,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	if c.Type == SheetsBackend {
		if c.APIKey == "" {
			return fmt.Errorf("Google Sheets API key is required for sheets backend")
		}
		if c.SpreadsheetID == "" {
			return fmt.Errorf("Google Spreadsheet ID is required for sheets backend")
		}
	}

	return nil
}

// GetBackendTypes returns all valid backend types
func GetBackendTypes() []BackendType {
	return []BackendType{SheetsBackend, FallbackBackend}
}

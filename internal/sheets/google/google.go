package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"volunteerhours/internal/core"
	ports "volunteerhours/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultRange covers name, date and hours columns below the header row.
const DefaultRange = "Sheet1!A2:C"

// Config holds what is needed to read the volunteer sheet.
type Config struct {
	// APIKey authenticates read-only access to a shared sheet.
	APIKey        string
	SpreadsheetID string
	// Range is an A1 range. Empty means DefaultRange.
	Range string
	// Endpoint overrides the Sheets API base URL (proxies, tests).
	Endpoint string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string
}

// Ensure interface conformance
var _ ports.LogReader = (*Client)(nil)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SHEETS_API_KEY, GOOGLE_SHEETS_SPREADSHEET_ID
// Optional: GOOGLE_SHEETS_RANGE (default "Sheet1!A2:C"), GOOGLE_SHEETS_ENDPOINT.
func NewFromEnv(ctx context.Context) (*Client, error) {
	return New(ctx, Config{
		APIKey:        strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_API_KEY")),
		SpreadsheetID: strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")),
		Range:         strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_RANGE")),
		Endpoint:      strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_ENDPOINT")),
	})
}

// New creates a Sheets client authenticated with an API key.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing GOOGLE_SHEETS_API_KEY")
	}
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	rng := cfg.Range
	if rng == "" {
		rng = DefaultRange
	}

	svc, err := newSheetsService(ctx, cfg.APIKey, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     rng,
	}, nil
}

func newSheetsService(ctx context.Context, apiKey, endpoint string) (*gsheet.Service, error) {
	opts := []goption.ClientOption{goption.WithAPIKey(apiKey)}
	if endpoint != "" {
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		slog.InfoContext(ctx, "Using custom Sheets endpoint", "endpoint", endpoint)
		opts = append(opts, goption.WithEndpoint(endpoint))
	}

	service, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// Range returns the A1 range the client reads.
func (c *Client) Range() string {
	return c.readRange
}

// ListLogs reads the configured range and returns the rows that pass validation.
func (c *Client) ListLogs(ctx context.Context) ([]core.VolunteerLog, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.readRange, err)
	}
	logs := parseLogs(resp.Values)
	slog.DebugContext(ctx, "Sheet rows parsed", "range", c.readRange, "rows", len(resp.Values), "kept", len(logs))
	return logs, nil
}

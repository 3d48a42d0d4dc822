//go:build integration

package google

import (
	"context"
	"os"
	"testing"
	"time"
)

// Integration tests require a real, shared spreadsheet and API key
// Run with: go test -tags=integration ./internal/sheets/google

func TestIntegration_ListLogs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID") == "" || os.Getenv("GOOGLE_SHEETS_API_KEY") == "" {
		t.Skip("GOOGLE_SHEETS_SPREADSHEET_ID or GOOGLE_SHEETS_API_KEY not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := NewFromEnv(ctx)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	logs, err := client.ListLogs(ctx)
	if err != nil {
		t.Fatalf("Failed to list logs: %v", err)
	}
	t.Logf("Found %d logs in %s", len(logs), client.Range())

	for i, l := range logs {
		if l.ID != i+1 {
			t.Errorf("log %d: expected id %d, got %d", i, i+1, l.ID)
		}
		if err := l.Validate(); err != nil {
			t.Errorf("log %d invalid: %v", l.ID, err)
		}
	}
}

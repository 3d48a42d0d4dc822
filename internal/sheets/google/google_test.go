package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(context.Background(), Config{
		APIKey:        "test-key",
		SpreadsheetID: "sheet-123",
		Endpoint:      srv.URL,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNew_MissingValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no key", Config{SpreadsheetID: "id"}, "missing GOOGLE_SHEETS_API_KEY"},
		{"no spreadsheet", Config{APIKey: "k"}, "missing GOOGLE_SHEETS_SPREADSHEET_ID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(context.Background(), tc.cfg)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestNew_DefaultRange(t *testing.T) {
	c, err := New(context.Background(), Config{APIKey: "k", SpreadsheetID: "id"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if c.Range() != DefaultRange {
		t.Fatalf("range: got %q", c.Range())
	}
}

func TestListLogs_ReadsConfiguredRange(t *testing.T) {
	var gotPath, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if gotKey == "" {
			gotKey = r.Header.Get("X-Goog-Api-Key")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A2:C4","majorDimension":"ROWS","values":[["A","2025-01-01","2"],["B","2025-01-02","bad"],["A","2025-01-03","3"]]}`))
	})

	logs, err := c.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if !strings.HasPrefix(gotPath, "/v4/spreadsheets/sheet-123/values/") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key not sent, got %q", gotKey)
	}
	if len(logs) != 2 || logs[0].ID != 1 || logs[1].ID != 2 || logs[1].Hours != 3 {
		t.Fatalf("unexpected logs: %+v", logs)
	}
}

func TestListLogs_NoValues(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A2:C","majorDimension":"ROWS"}`))
	})
	logs, err := c.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %+v", logs)
	}
}

func TestListLogs_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	})
	_, err := c.ListLogs(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusForbidden {
		t.Fatalf("expected googleapi 403, got %v", err)
	}
}

func TestListLogs_NilService(t *testing.T) {
	c := &Client{spreadsheetID: "x", readRange: DefaultRange}
	if _, err := c.ListLogs(context.Background()); err == nil {
		t.Fatal("expected error for uninitialized service")
	}
}

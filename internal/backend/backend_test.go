package backend

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"volunteerhours/internal/config"
	"volunteerhours/internal/core"
	"volunteerhours/internal/log"
	"volunteerhours/internal/services"
	gsheet "volunteerhours/internal/sheets/google"
)

func newTestFactory(buf *bytes.Buffer) *DefaultFactory {
	return NewFactory(log.New(log.Config{Output: buf}))
}

func TestFromAppConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want BackendType
	}{
		{name: "nothing configured", cfg: config.Config{}, want: FallbackBackend},
		{name: "key only", cfg: config.Config{GoogleSheetsAPIKey: "k"}, want: FallbackBackend},
		{name: "id only", cfg: config.Config{GoogleSheetsSpreadsheetID: "id"}, want: FallbackBackend},
		{name: "both", cfg: config.Config{GoogleSheetsAPIKey: "k", GoogleSheetsSpreadsheetID: "id"}, want: SheetsBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAppConfig(&tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Type != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.Type)
			}
		})
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (Config{Type: "sqlite"}).Validate(); err == nil {
		t.Fatal("expected invalid type error")
	}
	if err := (Config{Type: SheetsBackend, SpreadsheetID: "id"}).Validate(); err == nil {
		t.Fatal("expected missing key error")
	}
	if err := (Config{Type: FallbackBackend}).Validate(); err != nil {
		t.Fatalf("fallback needs no settings: %v", err)
	}
}

func TestCreateBackend_Sheets(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFactory(&buf)

	res, err := f.CreateBackend(context.Background(), Config{
		Type:          SheetsBackend,
		APIKey:        "key",
		SpreadsheetID: "sheet-123",
		Endpoint:      "http://127.0.0.1:1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != SheetsBackend {
		t.Fatalf("expected sheets backend, got %s", res.Type)
	}
	cli, ok := res.Reader.(*gsheet.Client)
	if !ok {
		t.Fatalf("expected *google.Client, got %T", res.Reader)
	}
	if cli.Range() != gsheet.DefaultRange {
		t.Fatalf("expected default range, got %q", cli.Range())
	}
	if !strings.Contains(buf.String(), "component=backend") {
		t.Fatalf("expected backend component in log, got %q", buf.String())
	}
}

func TestCreateBackend_Fallback(t *testing.T) {
	var buf bytes.Buffer
	res, err := newTestFactory(&buf).CreateBackend(context.Background(), Config{Type: FallbackBackend})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reader != nil {
		t.Fatalf("fallback must not carry a reader, got %T", res.Reader)
	}
}

func TestCreateOrFallback_DegradesOnError(t *testing.T) {
	var buf bytes.Buffer
	res := newTestFactory(&buf).CreateOrFallback(context.Background(), Config{Type: SheetsBackend})
	if res.Type != FallbackBackend || res.Reader != nil {
		t.Fatalf("expected fallback, got %+v", res)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("expected error log, got %q", buf.String())
	}
}

func TestSheetsBackend_ResolvesThroughFakeEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   core.Source
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"code":500,"message":"boom"}}`, want: core.SourceFallback},
		{name: "no rows", status: http.StatusOK, body: `{"range":"Sheet1!A2:C","values":[]}`, want: core.SourceEmpty},
		{name: "rows", status: http.StatusOK, body: `{"values":[["김지원","2025-03-05","2"]]}`, want: core.SourceRemote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var buf bytes.Buffer
			res := newTestFactory(&buf).CreateOrFallback(context.Background(), Config{
				Type:          SheetsBackend,
				APIKey:        "key",
				SpreadsheetID: "sheet-123",
				Endpoint:      srv.URL,
			})
			got := services.NewHoursResolver(res.Reader, nil).Resolve(context.Background())
			if got.Source != tt.want {
				t.Fatalf("source=%s, want %s", got.Source, tt.want)
			}
			if got.Logs == nil {
				t.Fatal("logs must never be nil")
			}
		})
	}
}

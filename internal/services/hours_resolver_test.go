package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"volunteerhours/internal/core"
	"volunteerhours/internal/sheets/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeReader struct {
	logs  []core.VolunteerLog
	err   error
	calls int
}

func (f *fakeReader) ListLogs(ctx context.Context) ([]core.VolunteerLog, error) {
	f.calls++
	return f.logs, f.err
}

type blockingReader struct{}

func (blockingReader) ListLogs(ctx context.Context) ([]core.VolunteerLog, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestResolve_NotConfigured(t *testing.T) {
	r := NewHoursResolver(nil, nil)
	if r.Configured() {
		t.Fatal("resolver without reader should not be configured")
	}
	got := r.Resolve(context.Background())
	want := core.FetchResult{Source: core.SourceFallback, Logs: memory.SampleLogs()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_RemoteError(t *testing.T) {
	reader := &fakeReader{err: errors.New("read Sheet1!A2:C: googleapi: Error 500")}
	r := NewHoursResolver(reader, nil)
	got := r.Resolve(context.Background())
	if reader.calls != 1 {
		t.Fatalf("expected exactly one remote call, got %d", reader.calls)
	}
	want := core.FetchResult{Source: core.SourceFallback, Logs: memory.SampleLogs()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Timeout(t *testing.T) {
	r := NewHoursResolver(blockingReader{}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	got := r.Resolve(ctx)
	if got.Source != core.SourceFallback || len(got.Logs) != len(memory.SampleLogs()) {
		t.Fatalf("expected fallback after timeout, got %+v", got)
	}
}

func TestResolve_Empty(t *testing.T) {
	r := NewHoursResolver(&fakeReader{logs: nil}, nil)
	got := r.Resolve(context.Background())
	if got.Source != core.SourceEmpty {
		t.Fatalf("expected empty source, got %q", got.Source)
	}
	if got.Logs == nil || len(got.Logs) != 0 {
		t.Fatalf("expected empty non-nil logs, got %#v", got.Logs)
	}
}

func TestResolve_Remote(t *testing.T) {
	logs := []core.VolunteerLog{{ID: 1, Name: "A", Date: "2025-01-01", Hours: 2}}
	r := NewHoursResolver(&fakeReader{logs: logs}, nil)
	got := r.Resolve(context.Background())
	want := core.FetchResult{Source: core.SourceRemote, Logs: logs}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_CustomFallback(t *testing.T) {
	fb := memory.New([]core.VolunteerLog{{ID: 1, Name: "B", Date: "2025-02-02", Hours: 1}})
	got := NewHoursResolver(nil, fb).Resolve(context.Background())
	if len(got.Logs) != 1 || got.Logs[0].Name != "B" {
		t.Fatalf("expected custom fallback, got %+v", got)
	}
}

func TestResolve_FallbackIsFreshCopy(t *testing.T) {
	r := NewHoursResolver(nil, nil)
	first := r.Resolve(context.Background())
	first.Logs[0].Hours = 100
	second := r.Resolve(context.Background())
	if second.Logs[0].Hours == 100 {
		t.Fatal("fallback logs shared between requests")
	}
}

package google

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"volunteerhours/internal/core"
)

func TestParseLogs_SkippedRowsDoNotConsumeIDs(t *testing.T) {
	values := [][]interface{}{
		{"A", "2025-01-01", "2"},
		{"B", "2025-01-02", "bad"},
		{"A", "2025-01-03", "3"},
	}
	got := parseLogs(values)
	want := []core.VolunteerLog{
		{ID: 1, Name: "A", Date: "2025-01-01", Hours: 2},
		{ID: 2, Name: "A", Date: "2025-01-03", Hours: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("logs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLogs_DefensiveRows(t *testing.T) {
	values := [][]interface{}{
		{},                                  // blank row
		{"", "2025-03-01", "1"},             // no name
		{"김지원", "", "1"},                    // no date
		{"김지원", "2025-03-01"},               // missing hours cell
		{"김지원", "2025-03-01", ""},           // empty hours
		{"김지원", "2025-03-01", "-2"},         // negative
		{"김지원", "2025-03-01", "NaN"},        // not finite
		{"  이민수 ", " 2025-03-02 ", " 1.5 "}, // trimmed
		{"박서현", "2025-03-03", 2.5, "extra"},  // numeric cell, extra column ignored
		{nil, "2025-03-04", "1"},            // nil cell
	}
	got := parseLogs(values)
	want := []core.VolunteerLog{
		{ID: 1, Name: "이민수", Date: "2025-03-02", Hours: 1.5},
		{ID: 2, Name: "박서현", Date: "2025-03-03", Hours: 2.5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("logs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLogs_IDsAreContiguous(t *testing.T) {
	var values [][]interface{}
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			values = append(values, []interface{}{"X", "2025-01-01", "oops"})
			continue
		}
		values = append(values, []interface{}{"X", "2025-01-01", "1"})
	}
	logs := parseLogs(values)
	for i, l := range logs {
		if l.ID != i+1 {
			t.Fatalf("log %d has id %d", i, l.ID)
		}
	}
	if len(logs) != 13 {
		t.Fatalf("expected 13 kept rows, got %d", len(logs))
	}
}

func TestParseLogs_Empty(t *testing.T) {
	if got := parseLogs(nil); len(got) != 0 {
		t.Fatalf("expected no logs, got %v", got)
	}
}

package memory

import (
	"context"
	"sync"

	"volunteerhours/internal/core"
	ports "volunteerhours/internal/sheets"
)

// sampleLogs is served whenever the spreadsheet is unavailable.
var sampleLogs = []core.VolunteerLog{
	{ID: 1, Name: "김지원", Date: "2025-03-05", Hours: 2},
	{ID: 2, Name: "김지원", Date: "2025-03-12", Hours: 2},
	{ID: 3, Name: "김지원", Date: "2025-04-02", Hours: 3},
	{ID: 4, Name: "이민수", Date: "2025-03-07", Hours: 2},
	{ID: 5, Name: "이민수", Date: "2025-03-21", Hours: 2},
	{ID: 6, Name: "이민수", Date: "2025-04-11", Hours: 3},
	{ID: 7, Name: "박서현", Date: "2025-03-09", Hours: 1.5},
	{ID: 8, Name: "박서현", Date: "2025-03-23", Hours: 2},
	{ID: 9, Name: "박서현", Date: "2025-04-06", Hours: 2.5},
	{ID: 10, Name: "정우진", Date: "2025-03-15", Hours: 3},
	{ID: 11, Name: "정우진", Date: "2025-04-03", Hours: 2},
}

// Store is an in-memory LogReader.
type Store struct {
	mu   sync.Mutex
	logs []core.VolunteerLog
}

var _ ports.LogReader = (*Store)(nil)

// New returns a store holding a copy of logs. IDs are kept as given.
func New(logs []core.VolunteerLog) *Store {
	return &Store{logs: append([]core.VolunteerLog(nil), logs...)}
}

// NewSample returns a store with the built-in sample logs.
func NewSample() *Store {
	return New(sampleLogs)
}

// SampleLogs returns a copy of the built-in sample logs.
func SampleLogs() []core.VolunteerLog {
	return append([]core.VolunteerLog(nil), sampleLogs...)
}

// ListLogs returns a copy of the stored logs.
func (s *Store) ListLogs(_ context.Context) ([]core.VolunteerLog, error) {
	return s.Logs(), nil
}

// Logs returns a copy of the stored logs. It never fails.
func (s *Store) Logs() []core.VolunteerLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.VolunteerLog, len(s.logs))
	copy(out, s.logs)
	return out
}

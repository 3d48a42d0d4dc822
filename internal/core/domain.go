package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// SourceRemote marks logs read from the configured spreadsheet.
	SourceRemote Source = "remote"
	// SourceFallback marks the built-in sample set, used when the spreadsheet
	// is not configured or could not be read.
	SourceFallback Source = "fallback"
	// SourceEmpty marks a reachable spreadsheet that yielded no usable rows.
	SourceEmpty Source = "empty"
)

// DateLayout is the calendar date format used in the sheet and in query parameters.
const DateLayout = "2006-01-02"

type (
	// Source is the provenance tag returned alongside the logs.
	Source string

	// VolunteerLog is a single volunteering session.
	VolunteerLog struct {
		ID    int     `json:"id"`
		Name  string  `json:"name"`
		Date  string  `json:"date"` // YYYY-MM-DD
		Hours float64 `json:"hours"`
	}

	// FetchResult is what the resolver hands to the presentation layer.
	FetchResult struct {
		Source Source         `json:"source"`
		Logs   []VolunteerLog `json:"logs"`
	}
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidHours = errors.New("invalid hours")
	ErrEmptyName    = errors.New("empty name")
)

// IsValid reports whether s is one of the known provenance tags.
func (s Source) IsValid() bool {
	switch s {
	case SourceRemote, SourceFallback, SourceEmpty:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (s Source) String() string {
	return string(s)
}

// Validate checks the invariants a log must satisfy to be kept.
func (l VolunteerLog) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(l.Date) == "" {
		return ErrInvalidDate
	}
	if !validHours(l.Hours) {
		return ErrInvalidHours
	}
	return nil
}

// ParseDate parses a calendar date. Besides YYYY-MM-DD it accepts a full
// RFC 3339 timestamp, in which case only its date part is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDate
}

// MustDate is a test and fixture helper. It panics on malformed input.
func MustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic("core: bad date " + s)
	}
	return t
}

package core

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// VolunteerTotal represents hours aggregated by volunteer name.
type VolunteerTotal struct {
	Name         string  `json:"name"`
	TotalHours   float64 `json:"totalHours"`
	SessionCount int     `json:"sessionCount"`
}

// Summary is the per-volunteer breakdown for a date range.
type Summary struct {
	Rows       []VolunteerTotal `json:"rows"`
	TotalHours float64          `json:"totalHours"`
}

// DateRange is an inclusive calendar range. A zero bound means unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseRange builds a range from query values. Empty or malformed bounds are
// treated as absent.
func ParseRange(from, to string) DateRange {
	var rng DateRange
	if t, err := ParseDate(from); err == nil {
		rng.From = t
	}
	if t, err := ParseDate(to); err == nil {
		rng.To = t
	}
	return rng
}

// RecentRange returns the range covering the last days days up to today (UTC).
func RecentRange(now time.Time, days int) DateRange {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return DateRange{From: today.AddDate(0, 0, -days), To: today}
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether t falls within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// FromString returns the lower bound as YYYY-MM-DD, or "" when unbounded.
func (r DateRange) FromString() string {
	return formatBound(r.From)
}

// ToString returns the upper bound as YYYY-MM-DD, or "" when unbounded.
func (r DateRange) ToString() string {
	return formatBound(r.To)
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FilterByRange keeps the logs whose date parses and falls within rng.
// Logs with a malformed date are dropped.
func FilterByRange(logs []VolunteerLog, rng DateRange) []VolunteerLog {
	out := make([]VolunteerLog, 0, len(logs))
	for _, l := range logs {
		d, err := ParseDate(l.Date)
		if err != nil || !rng.Contains(d) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Summarize filters logs by rng, groups them by name and returns the rows
// sorted in Korean dictionary order together with the grand total.
func Summarize(logs []VolunteerLog, rng DateRange) Summary {
	hoursByName := map[string][]float64{}
	for _, l := range FilterByRange(logs, rng) {
		hoursByName[l.Name] = append(hoursByName[l.Name], l.Hours)
	}

	rows := make([]VolunteerTotal, 0, len(hoursByName))
	for name, hours := range hoursByName {
		// Sum in a fixed order so the total does not depend on input order.
		sort.Float64s(hours)
		var total float64
		for _, h := range hours {
			total += h
		}
		rows = append(rows, VolunteerTotal{Name: name, TotalHours: total, SessionCount: len(hours)})
	}
	SortByName(rows)

	var total float64
	for _, r := range rows {
		total += r.TotalHours
	}
	return Summary{Rows: rows, TotalHours: total}
}

// SortByName orders rows using Korean collation. Names the collator considers
// equal fall back to byte order so the result is deterministic.
func SortByName(rows []VolunteerTotal) {
	// Collators keep internal buffers and must not be shared between goroutines.
	c := collate.New(language.Korean)
	sort.SliceStable(rows, func(i, j int) bool {
		if n := c.CompareString(rows[i].Name, rows[j].Name); n != 0 {
			return n < 0
		}
		return rows[i].Name < rows[j].Name
	})
}

package http

import (
	"net/url"
	"strings"

	"volunteerhours/internal/core"
)

// RangeParams holds the date bounds taken from a query string.
type RangeParams struct {
	// RawFrom and RawTo are the trimmed query values as sent.
	RawFrom string
	RawTo   string
	// Range drops bounds that are empty or not a valid date.
	Range core.DateRange
}

// ParseRangeParams extracts the optional from/to bounds. Malformed values
// are treated as absent rather than rejected.
func ParseRangeParams(query url.Values) RangeParams {
	from := sanitizeInput(query.Get("from"))
	to := sanitizeInput(query.Get("to"))
	return RangeParams{
		RawFrom: from,
		RawTo:   to,
		Range:   core.ParseRange(from, to),
	}
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

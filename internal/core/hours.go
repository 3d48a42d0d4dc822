// Package core provides hours parsing and formatting utilities.
//
// Sheet cells arrive as formatted text. Hours must be a plain decimal number;
// anything else causes the row to be skipped upstream.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseHours converts a sheet cell to a number of hours.
//
// Surrounding whitespace is ignored. Empty text, text that is not a number,
// NaN, infinities and negative values are rejected with ErrInvalidHours.
//
// Examples:
//
//	ParseHours("2")    -> 2, nil
//	ParseHours(" 1.5") -> 1.5, nil
//	ParseHours("bad")  -> 0, ErrInvalidHours
//	ParseHours("")     -> 0, ErrInvalidHours
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidHours
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !validHours(f) {
		return 0, ErrInvalidHours
	}
	return f, nil
}

func validHours(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// FormatHours renders hours with one decimal, e.g. "2.5시간".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64) + "시간"
}

// FormatSessions renders a session count, e.g. "3회".
func FormatSessions(n int) string {
	return strconv.Itoa(n) + "회"
}

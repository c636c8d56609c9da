// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates normalizes free-form employment dates to the month
// granularity the CV renderer expects.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// Present marks an ongoing period with no end date.
	Present = "present"

	// MonthLayout is the canonical output layout (YYYY-MM).
	MonthLayout = "2006-01"
)

// partialLayouts covers year- and month-only forms that the general
// parser rejects or reads ambiguously.
var partialLayouts = []string{
	"2006",
	"2006-01",
	"2006/01",
	"01/2006",
	"01-2006",
	"January 2006",
	"Jan 2006",
	"Jan. 2006",
	"January, 2006",
}

// dayFirstLayouts are tried only after the general parser has failed, so
// an input that is valid either way ("03/04/2021") keeps the month-first
// reading and only day-first dates such as "15/01/2020" land here.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2.1.2006",
	"2-1-2006",
}

// ongoingWords are values exports use in place of an empty end date.
var ongoingWords = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
}

// ParseError describes a date string that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse date %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Result is the outcome of Normalize. Value is always usable. Diagnostic is
// non-nil when the input was present but unparseable and Value fell back to
// Present.
type Result struct {
	Value      string
	Diagnostic error
}

// Normalize converts raw to YYYY-MM. Empty input yields Present. Input that
// cannot be parsed also yields Present, with the parse failure reported in
// the Diagnostic rather than as an error.
func Normalize(raw string) Result {
	s := strings.TrimSpace(raw)
	if s == "" || ongoingWords[strings.ToLower(s)] {
		return Result{Value: Present}
	}

	t, err := parse(s)
	if err != nil {
		return Result{Value: Present, Diagnostic: &ParseError{Input: raw, Err: err}}
	}
	return Result{Value: t.Format(MonthLayout)}
}

func parse(s string) (time.Time, error) {
	for _, layout := range partialLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	t, err := parseAny(s)
	if err == nil {
		return t, nil
	}
	for _, layout := range dayFirstLayouts {
		if t, derr := time.Parse(layout, s); derr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func parseAny(s string) (t time.Time, err error) {
	// dateparse panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("date parser: %v", r)
		}
	}()
	return dateparse.ParseAny(s)
}

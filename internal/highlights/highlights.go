// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlights splits free-text summaries into bullet-sized
// highlights.
package highlights

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the target highlight length in characters.
const DefaultMaxLength = 150

// Segment splits text into highlights no longer than maxLen where possible.
// Text that already fits is returned unchanged as a single highlight.
// Longer text is split into sentences on '.', and consecutive sentences are
// packed greedily into highlights. A sentence longer than maxLen becomes a
// highlight of its own and is never cut. Text with no sentence breaks is
// returned whole. Empty text yields no highlights.
//
// A maxLen of zero or less uses DefaultMaxLength.
func Segment(text string, maxLen int) []string {
	if text == "" {
		return nil
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	if length(text) <= maxLen || !strings.Contains(text, ".") {
		return []string{text}
	}

	var out []string
	current := ""
	for _, sentence := range sentences(text) {
		if length(current)+length(sentence) <= maxLen {
			if current == "" {
				current = sentence
			} else {
				current += " " + sentence
			}
			continue
		}
		if current != "" {
			out = append(out, strings.TrimSpace(current))
		}
		current = sentence
	}
	if current != "" {
		out = append(out, strings.TrimSpace(current))
	}

	if len(out) == 0 {
		return []string{text}
	}
	return out
}

// sentences splits text on '.' and returns the non-blank units, trimmed and
// terminated with a period.
func sentences(text string) []string {
	parts := strings.Split(text, ".")
	units := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		units = append(units, p+".")
	}
	return units
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

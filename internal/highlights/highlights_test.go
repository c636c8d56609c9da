// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package highlights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{
			name:   "empty text",
			text:   "",
			maxLen: 150,
			want:   nil,
		},
		{
			name:   "short text unchanged",
			text:   "Did great things. Shipped features.",
			maxLen: 150,
			want:   []string{"Did great things. Shipped features."},
		},
		{
			name:   "exactly at limit",
			text:   "abcde",
			maxLen: 5,
			want:   []string{"abcde"},
		},
		{
			name:   "greedy packing",
			text:   "First sentence here. Second one is here. Third sentence is longer than the others.",
			maxLen: 40,
			want: []string{
				"First sentence here. Second one is here.",
				"Third sentence is longer than the others.",
			},
		},
		{
			name:   "long sentence kept whole",
			text:   "Short. This sentence alone is far longer than the limit allows. End.",
			maxLen: 20,
			want: []string{
				"Short.",
				"This sentence alone is far longer than the limit allows.",
				"End.",
			},
		},
		{
			name:   "blank units dropped",
			text:   "One... Two.  . Three.",
			maxLen: 10,
			want:   []string{"One. Two.", "Three."},
		},
		{
			name:   "no sentence breaks",
			text:   "a paragraph without any full stop that runs well past the limit",
			maxLen: 20,
			want:   []string{"a paragraph without any full stop that runs well past the limit"},
		},
		{
			name:   "only periods",
			text:   "......",
			maxLen: 3,
			want:   []string{"......"},
		},
		{
			name:   "non-positive limit uses default",
			text:   "Fits easily.",
			maxLen: 0,
			want:   []string{"Fits easily."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.text, tt.maxLen))
		})
	}
}

func TestSegment_PreservesSentences(t *testing.T) {
	texts := []string{
		"Led the platform team. Migrated services to Kubernetes. Cut deploy time by half. Mentored four engineers. Ran the on-call rotation for two years.",
		"Built data pipelines.Reduced cost.   Owned the billing system end to end and its quarterly audits. Introduced contract tests.",
		"Ünïcödé sentence one. Ünïcödé sentence two. Ünïcödé sentence three.",
	}
	squash := func(s string) string { return strings.Join(strings.Fields(s), "") }

	for _, text := range texts {
		for _, maxLen := range []int{10, 30, 60} {
			got := Segment(text, maxLen)
			assert.Equal(t, squash(strings.Join(sentences(text), "")), squash(strings.Join(got, "")),
				"maxLen=%d text=%q", maxLen, text)
		}
	}
}

func TestSegment_GreedyBound(t *testing.T) {
	text := "Alpha beta gamma. Delta epsilon. Zeta eta theta iota kappa lambda mu. Nu xi. Omicron pi rho sigma tau upsilon phi chi psi omega."
	for _, maxLen := range []int{15, 25, 50} {
		got := Segment(text, maxLen)
		for _, h := range got {
			if len(h) > maxLen {
				// Only a single oversized sentence may exceed the limit.
				assert.Equal(t, 1, strings.Count(h, "."), "maxLen=%d highlight=%q", maxLen, h)
			}
		}
		for i := 1; i < len(got); i++ {
			first := strings.SplitAfter(got[i], ".")[0]
			assert.Greater(t, len(got[i-1])+len(first), maxLen,
				"maxLen=%d: %q could have joined %q", maxLen, first, got[i-1])
		}
	}
}

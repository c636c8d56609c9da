// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the profile export record, the CV document handed
// to the renderer, and the configuration structs shared by the CLI stages.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a professional-profile export as read from the source JSON.
// Every field is optional; consumers must default anything that is absent.
type Record struct {
	// Profile is the identity block. A nil Profile means the export had none.
	Profile *Profile `json:"profile,omitempty" yaml:"profile,omitempty"`

	// ProfessionalExperience lists positions in source order.
	ProfessionalExperience []Experience `json:"professional_experience,omitempty" yaml:"professional_experience,omitempty"`

	// Education lists schools in source order.
	Education []Education `json:"education,omitempty" yaml:"education,omitempty"`

	// Skills holds categorized skill lists.
	Skills *Skills `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Profile is the identity block of a Record.
type Profile struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`

	// Phone is carried through decoding but never mapped; the renderer's
	// phone validation rejects most free-form numbers.
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`

	LinkedInURL string `json:"linkedin_url,omitempty" yaml:"linkedin_url,omitempty"`
	GitHubURL   string `json:"github_url,omitempty" yaml:"github_url,omitempty"`

	// Headline is a one-line professional summary.
	Headline string `json:"headline,omitempty" yaml:"headline,omitempty"`
}

// Experience is one position in a Record.
type Experience struct {
	Company  string `json:"company,omitempty" yaml:"company,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// StartDate and EndDate are free-form date strings. An empty EndDate
	// means the position is ongoing.
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// Summary is a free-text paragraph describing the position.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Education is one school entry in a Record.
type Education struct {
	School string `json:"school,omitempty" yaml:"school,omitempty"`

	// Degree may embed the field of study, e.g. "Master of Science in Physics".
	Degree string `json:"degree,omitempty" yaml:"degree,omitempty"`

	StartYear Year   `json:"start_year,omitempty" yaml:"start_year,omitempty"`
	EndYear   Year   `json:"end_year,omitempty" yaml:"end_year,omitempty"`
	Summary   string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Skills holds the three skill categories of a Record. Order within each
// list is preserved.
type Skills struct {
	ProgrammingLanguages []string `json:"programming_languages,omitempty" yaml:"programming_languages,omitempty"`
	FrameworksLibraries  []string `json:"frameworks_libraries,omitempty" yaml:"frameworks_libraries,omitempty"`
	OtherSkills          []string `json:"other_skills,omitempty" yaml:"other_skills,omitempty"`
}

// Year is a calendar year kept as its textual form. Exports write years as
// JSON numbers or strings; both decode to the same value and null decodes
// to the empty string.
type Year string

// UnmarshalJSON accepts a JSON number, string, or null.
func (y *Year) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*y = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding year %s: %w", raw, err)
		}
		*y = Year(s)
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("decoding year %s: not a number or string", raw)
	}
	*y = Year(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// String returns the year text.
func (y Year) String() string { return string(y) }

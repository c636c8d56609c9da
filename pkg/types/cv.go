// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is the renderer input: a cv block and a design block. Field order
// here is the key order of the serialized document.
type Document struct {
	CV     CV     `json:"cv" yaml:"cv"`
	Design Design `json:"design" yaml:"design"`
}

// CV holds identity, social links, and the content sections.
type CV struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Email    string `json:"email" yaml:"email"`

	// SocialNetworks is omitted entirely when no profile URL was present.
	SocialNetworks []SocialNetwork `json:"social_networks,omitempty" yaml:"social_networks,omitempty"`

	Sections Sections `json:"sections" yaml:"sections"`
}

// SocialNetwork is one network handle, e.g. {LinkedIn, jdoe}.
type SocialNetwork struct {
	Network  string `json:"network" yaml:"network"`
	Username string `json:"username" yaml:"username"`
}

// Sections holds the named CV sections. A section with no entries is left
// nil and does not appear in the serialized document.
type Sections struct {
	Summary      []string          `json:"summary,omitempty" yaml:"summary,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education    []EducationEntry  `json:"education,omitempty" yaml:"education,omitempty"`
	Technologies []TechnologyEntry `json:"technologies,omitempty" yaml:"technologies,omitempty"`
}

// Names returns the keys of the non-empty sections in document order.
func (s Sections) Names() []string {
	var names []string
	if len(s.Summary) > 0 {
		names = append(names, "summary")
	}
	if len(s.Experience) > 0 {
		names = append(names, "experience")
	}
	if len(s.Education) > 0 {
		names = append(names, "education")
	}
	if len(s.Technologies) > 0 {
		names = append(names, "technologies")
	}
	return names
}

// ExperienceEntry is one position. Dates are YYYY-MM or "present".
type ExperienceEntry struct {
	Company    string   `json:"company" yaml:"company"`
	Position   string   `json:"position" yaml:"position"`
	StartDate  string   `json:"start_date" yaml:"start_date"`
	EndDate    string   `json:"end_date" yaml:"end_date"`
	Location   string   `json:"location,omitempty" yaml:"location,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// EducationEntry is one school. Dates are plain year strings.
type EducationEntry struct {
	Institution string   `json:"institution" yaml:"institution"`
	Area        string   `json:"area" yaml:"area"`
	Degree      string   `json:"degree" yaml:"degree"`
	StartDate   string   `json:"start_date" yaml:"start_date"`
	EndDate     string   `json:"end_date" yaml:"end_date"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// TechnologyEntry is a labelled, comma-joined skill list.
type TechnologyEntry struct {
	Label   string `json:"label" yaml:"label"`
	Details string `json:"details" yaml:"details"`
}

// Design carries renderer styling options.
type Design struct {
	Theme Theme `json:"theme" yaml:"theme"`
}

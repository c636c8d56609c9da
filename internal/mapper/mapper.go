// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapper converts a professional-profile Record into a renderer
// Document. Map is pure and total: missing input is defaulted, and date
// parse failures are reported as diagnostics instead of errors.
package mapper

import (
	"fmt"
	"strings"

	"github.com/pdiddy/cvforge/internal/dates"
	"github.com/pdiddy/cvforge/internal/highlights"
	"github.com/pdiddy/cvforge/pkg/types"
)

// Technology section labels, in output order.
const (
	LabelProgrammingLanguages = "Programming Languages"
	LabelFrameworksLibraries  = "Frameworks & Libraries"
	LabelToolsTechnologies    = "Tools & Technologies"
)

// Social network names as the renderer spells them.
const (
	NetworkLinkedIn = "LinkedIn"
	NetworkGitHub   = "GitHub"
)

// degreeAreaSep separates degree from field of study in a degree string.
const degreeAreaSep = " in "

// Options configures a Mapper. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	PlaceholderName    string
	UnknownCompany     string
	UnknownPosition    string
	UnknownInstitution string
	UnknownDegree      string

	// MaxHighlightLength is passed to highlights.Segment.
	MaxHighlightLength int

	// MaxOtherSkills caps the Tools & Technologies list. Zero or less
	// disables the cap.
	MaxOtherSkills int
}

// DefaultOptions returns the stock placeholders and limits.
func DefaultOptions() Options {
	return Options{
		PlaceholderName:    "Unknown Name",
		UnknownCompany:     "Unknown Company",
		UnknownPosition:    "Unknown Position",
		UnknownInstitution: "Unknown Institution",
		UnknownDegree:      "Unknown Degree",
		MaxHighlightLength: highlights.DefaultMaxLength,
		MaxOtherSkills:     10,
	}
}

// OptionsFromConfig overlays the non-zero fields of cfg on DefaultOptions.
func OptionsFromConfig(cfg types.MappingConfig) Options {
	opts := DefaultOptions()
	if cfg.PlaceholderName != "" {
		opts.PlaceholderName = cfg.PlaceholderName
	}
	if cfg.MaxHighlightLength > 0 {
		opts.MaxHighlightLength = cfg.MaxHighlightLength
	}
	if cfg.MaxOtherSkills != 0 {
		opts.MaxOtherSkills = cfg.MaxOtherSkills
	}
	return opts
}

// Diagnostic reports a recovered problem with one source field.
type Diagnostic struct {
	// Field is the source path, e.g. "professional_experience[2].end_date".
	Field string
	Err   error
}

func (d Diagnostic) String() string {
	return d.Field + ": " + d.Err.Error()
}

// Result is the output of Map.
type Result struct {
	Document    types.Document
	Diagnostics []Diagnostic
}

// Mapper converts Records to Documents. It holds only configuration and is
// safe for concurrent use.
type Mapper struct {
	opts Options
}

// New returns a Mapper using opts.
func New(opts Options) *Mapper {
	return &Mapper{opts: opts}
}

// Map converts rec into a Document styled with theme. The theme is copied
// verbatim; the renderer decides whether it is acceptable.
func (m *Mapper) Map(rec types.Record, theme types.Theme) Result {
	var diags []Diagnostic

	profile := types.Profile{}
	if rec.Profile != nil {
		profile = *rec.Profile
	}

	doc := types.Document{
		CV: types.CV{
			Name:           orDefault(profile.Name, m.opts.PlaceholderName),
			Location:       profile.Location,
			Email:          profile.Email,
			SocialNetworks: socialNetworks(profile),
		},
		Design: types.Design{Theme: theme},
	}

	if profile.Headline != "" {
		doc.CV.Sections.Summary = []string{profile.Headline}
	}

	for i, exp := range rec.ProfessionalExperience {
		entry, ds := m.experience(i, exp)
		doc.CV.Sections.Experience = append(doc.CV.Sections.Experience, entry)
		diags = append(diags, ds...)
	}

	for _, edu := range rec.Education {
		doc.CV.Sections.Education = append(doc.CV.Sections.Education, m.education(edu))
	}

	doc.CV.Sections.Technologies = m.technologies(rec.Skills)

	return Result{Document: doc, Diagnostics: diags}
}

func (m *Mapper) experience(i int, exp types.Experience) (types.ExperienceEntry, []Diagnostic) {
	var diags []Diagnostic
	date := func(field, raw string) string {
		r := dates.Normalize(raw)
		if r.Diagnostic != nil {
			diags = append(diags, Diagnostic{
				Field: fmt.Sprintf("professional_experience[%d].%s", i, field),
				Err:   r.Diagnostic,
			})
		}
		return r.Value
	}

	entry := types.ExperienceEntry{
		Company:   orDefault(exp.Company, m.opts.UnknownCompany),
		Position:  orDefault(exp.Title, m.opts.UnknownPosition),
		StartDate: date("start_date", exp.StartDate),
		EndDate:   date("end_date", exp.EndDate),
		Location:  exp.Location,
	}
	if exp.Summary != "" {
		entry.Highlights = highlights.Segment(exp.Summary, m.opts.MaxHighlightLength)
	}
	return entry, diags
}

func (m *Mapper) education(edu types.Education) types.EducationEntry {
	degree, area := SplitDegree(orDefault(edu.Degree, m.opts.UnknownDegree))
	entry := types.EducationEntry{
		Institution: orDefault(edu.School, m.opts.UnknownInstitution),
		Area:        area,
		Degree:      degree,
		StartDate:   edu.StartYear.String(),
		EndDate:     edu.EndYear.String(),
	}
	if edu.Summary != "" {
		entry.Highlights = highlights.Segment(edu.Summary, m.opts.MaxHighlightLength)
	}
	return entry
}

func (m *Mapper) technologies(skills *types.Skills) []types.TechnologyEntry {
	if skills == nil {
		return nil
	}

	var out []types.TechnologyEntry
	add := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		out = append(out, types.TechnologyEntry{Label: label, Details: strings.Join(items, ", ")})
	}

	add(LabelProgrammingLanguages, skills.ProgrammingLanguages)
	add(LabelFrameworksLibraries, skills.FrameworksLibraries)

	other := skills.OtherSkills
	if m.opts.MaxOtherSkills > 0 && len(other) > m.opts.MaxOtherSkills {
		other = other[:m.opts.MaxOtherSkills]
	}
	add(LabelToolsTechnologies, other)

	return out
}

// SplitDegree splits "Master of Science in Physics" into degree "Master of
// Science" and area "Physics" at the first " in ". Without a separator both
// results are the whole string.
func SplitDegree(s string) (degree, area string) {
	if before, after, ok := strings.Cut(s, degreeAreaSep); ok {
		return before, after
	}
	return s, s
}

// Handle returns the last '/'-separated segment of a profile URL.
//
// Trailing slashes are trimmed first, so ".../in/jdoe/" yields "jdoe". This
// intentionally differs from a plain split-and-take-last, which would give
// an empty username for such URLs; keep the trim.
func Handle(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

func socialNetworks(p types.Profile) []types.SocialNetwork {
	var out []types.SocialNetwork
	if p.LinkedInURL != "" {
		out = append(out, types.SocialNetwork{Network: NetworkLinkedIn, Username: Handle(p.LinkedInURL)})
	}
	if p.GitHubURL != "" {
		out = append(out, types.SocialNetwork{Network: NetworkGitHub, Username: Handle(p.GitHubURL)})
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

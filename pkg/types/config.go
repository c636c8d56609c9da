// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MappingConfig holds the tunables of the profile mapper.
type MappingConfig struct {
	// PlaceholderName is used when the profile has no name (default "Unknown Name").
	PlaceholderName string `json:"placeholder_name" yaml:"placeholder_name"`

	// MaxHighlightLength is the target length of one highlight (default 150).
	MaxHighlightLength int `json:"max_highlight_length" yaml:"max_highlight_length"`

	// MaxOtherSkills caps the Tools & Technologies entry (default 10, negative = no cap).
	MaxOtherSkills int `json:"max_other_skills" yaml:"max_other_skills"`
}

// RendererConfig holds settings for the external CV renderer.
type RendererConfig struct {
	// Binary is the renderer executable name or path (default "rendercv").
	Binary string `json:"binary" yaml:"binary"`
}

// GenerateConfig groups the settings of one generate run.
type GenerateConfig struct {
	// BaseOutputDir is the root of the output tree (default "output").
	// Artifacts land in BaseOutputDir/<user-id>/<theme>/.
	BaseOutputDir string `json:"base_output_dir" yaml:"base_output_dir"`

	// Themes lists the themes to render, in order.
	Themes []Theme `json:"themes" yaml:"themes"`

	// Debug keeps the intermediate YAML next to the theme directories.
	Debug bool `json:"debug" yaml:"debug"`

	Mapping  MappingConfig  `json:"mapping" yaml:"mapping"`
	Renderer RendererConfig `json:"renderer" yaml:"renderer"`
}

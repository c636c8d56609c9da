// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Theme identifies a renderer visual theme. The renderer owns the meaning
// of each value; this package only knows which names it ships with.
type Theme string

const (
	ThemeClassic            Theme = "classic"
	ThemeSb2nov             Theme = "sb2nov"
	ThemeEngineeringResumes Theme = "engineeringresumes"
	ThemeModernCV           Theme = "moderncv"
	ThemeEngineeringClassic Theme = "engineeringclassic"
)

// DefaultTheme is used when no theme is requested.
const DefaultTheme = ThemeSb2nov

// Themes returns the recognized themes in display order.
func Themes() []Theme {
	return []Theme{
		ThemeSb2nov,
		ThemeClassic,
		ThemeEngineeringResumes,
		ThemeModernCV,
		ThemeEngineeringClassic,
	}
}

// Valid reports whether t is one of the recognized themes.
func (t Theme) Valid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

// Package prefs persists per-user display preferences in a key-value slot.
package prefs

import "strings"

// Theme names a color theme.
type Theme string

const (
	ThemeCoffee Theme = "coffee"
	ThemeLight  Theme = "light"
)

// DefaultTheme is used when nothing valid is stored.
const DefaultTheme = ThemeCoffee

// Themes lists every supported theme in display order.
var Themes = []Theme{ThemeCoffee, ThemeLight}

// ParseTheme returns the theme named s and whether it is known.
func ParseTheme(s string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case ThemeCoffee, ThemeLight:
		return t, true
	}
	return DefaultTheme, false
}

// Toggle flips between coffee and light.
func (t Theme) Toggle() Theme {
	if t == ThemeCoffee {
		return ThemeLight
	}
	return ThemeCoffee
}

// ViewMode selects the table density.
type ViewMode string

const (
	ViewDetailed ViewMode = "detailed"
	ViewCompact  ViewMode = "compact"
)

// DefaultViewMode is used when nothing valid is stored.
const DefaultViewMode = ViewDetailed

// ParseViewMode returns the view mode named s and whether it is known.
func ParseViewMode(s string) (ViewMode, bool) {
	v := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ViewDetailed, ViewCompact:
		return v, true
	}
	return DefaultViewMode, false
}

// Toggle flips between compact and detailed.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewCompact {
		return ViewDetailed
	}
	return ViewCompact
}

// Label is the toggle caption shown for the mode.
func (v ViewMode) Label() string {
	if v == ViewCompact {
		return "Compact View"
	}
	return "Detailed View"
}

// UserPreferences is the persisted display state.
type UserPreferences struct {
	ThemeName Theme    `json:"themeName"`
	ViewMode  ViewMode `json:"viewMode"`
}

// Defaults returns {coffee, detailed}.
func Defaults() UserPreferences {
	return UserPreferences{ThemeName: DefaultTheme, ViewMode: DefaultViewMode}
}

// Normalize replaces unknown field values with their defaults.
func (p UserPreferences) Normalize() UserPreferences {
	theme, _ := ParseTheme(string(p.ThemeName))
	view, _ := ParseViewMode(string(p.ViewMode))
	return UserPreferences{ThemeName: theme, ViewMode: view}
}

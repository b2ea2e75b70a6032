package ui

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gamecat/internal/config"
	"github.com/oakwood-commons/gamecat/internal/prefs"
)

func TestNewThemeSetDefaults(t *testing.T) {
	set, ignored := NewThemeSet(nil)
	require.Empty(t, ignored)
	require.Len(t, set, 2)
	require.Equal(t, builtinTheme(prefs.ThemeCoffee).Accent, set.Get(prefs.ThemeCoffee).Accent)
	require.Equal(t, "rounded", set.Get(prefs.ThemeCoffee).BorderStyle)
	require.Equal(t, "normal", set.Get(prefs.ThemeLight).BorderStyle)
}

func TestNewThemeSetOverridesPerField(t *testing.T) {
	set, ignored := NewThemeSet(map[string]config.ThemeConfig{
		"light":    {Accent: "#123456", BorderStyle: "round"},
		"midnight": {Accent: "#000000"},
	})
	require.Equal(t, []string{"midnight"}, ignored)

	light := set.Get(prefs.ThemeLight)
	require.Equal(t, lipgloss.Color("#123456"), light.Accent)
	require.Equal(t, builtinTheme(prefs.ThemeLight).Text, light.Text)
	require.Equal(t, "rounded", light.BorderStyle)
}

func TestThemeSetGetFallsBack(t *testing.T) {
	var empty ThemeSet
	require.Equal(t, builtinTheme(prefs.ThemeLight), empty.Get(prefs.ThemeLight))
}

func TestBorderForTheme(t *testing.T) {
	require.Equal(t, lipgloss.RoundedBorder(), borderForTheme(Theme{BorderStyle: "Rounded"}))
	require.Equal(t, lipgloss.NormalBorder(), borderForTheme(Theme{}))
}

package ui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/gamecat/internal/config"
	"github.com/oakwood-commons/gamecat/internal/prefs"
)

// Theme defines the colors used across the UI.
type Theme struct {
	Accent      color.Color // Title bar and selected header
	Text        color.Color // Body text
	Muted       color.Color // Secondary text (URLs, hints)
	Background  color.Color // Panel background
	HeaderFG    color.Color // Table header text
	HeaderBG    color.Color // Table header background
	SelectedFG  color.Color // Selected row foreground
	SelectedBG  color.Color // Selected row background
	Link        color.Color // Game titles
	Unavailable color.Color // Struck-through titles
	Score       color.Color // Review stars
	BadgeFG     color.Color // Tag pill text
	BadgeBG     color.Color // Tag pill background
	Error       color.Color // Failure messages
	FooterFG    color.Color // Footer text
	FooterBG    color.Color // Footer background
	HelpKey     color.Color // Help key labels
	HelpValue   color.Color // Help descriptions
	BorderStyle string      // normal|rounded
}

// builtinTheme is the palette used when configuration omits a color.
func builtinTheme(name prefs.Theme) Theme {
	if name == prefs.ThemeLight {
		return Theme{
			Accent:      lipgloss.Color("#570DF8"),
			Text:        lipgloss.Color("#1F2937"),
			Muted:       lipgloss.Color("#6B7280"),
			Background:  lipgloss.Color("#FFFFFF"),
			HeaderFG:    lipgloss.Color("#570DF8"),
			HeaderBG:    lipgloss.Color("#F2F2F2"),
			SelectedFG:  lipgloss.Color("#FFFFFF"),
			SelectedBG:  lipgloss.Color("#570DF8"),
			Link:        lipgloss.Color("#1F2937"),
			Unavailable: lipgloss.Color("#9CA3AF"),
			Score:       lipgloss.Color("#B45309"),
			BadgeFG:     lipgloss.Color("#FFFFFF"),
			BadgeBG:     lipgloss.Color("#F000B8"),
			Error:       lipgloss.Color("#DC2626"),
			FooterFG:    lipgloss.Color("#6B7280"),
			FooterBG:    lipgloss.Color("#F2F2F2"),
			HelpKey:     lipgloss.Color("#570DF8"),
			HelpValue:   lipgloss.Color("#374151"),
			BorderStyle: "normal",
		}
	}
	return Theme{
		Accent:      lipgloss.Color("#DB924B"),
		Text:        lipgloss.Color("#C59F60"),
		Muted:       lipgloss.Color("#8C7662"),
		Background:  lipgloss.Color("#20161F"),
		HeaderFG:    lipgloss.Color("#DB924B"),
		HeaderBG:    lipgloss.Color("#2A1F29"),
		SelectedFG:  lipgloss.Color("#20161F"),
		SelectedBG:  lipgloss.Color("#DB924B"),
		Link:        lipgloss.Color("#C59F60"),
		Unavailable: lipgloss.Color("#6B5A4E"),
		Score:       lipgloss.Color("#E5B84B"),
		BadgeFG:     lipgloss.Color("#E8D8C3"),
		BadgeBG:     lipgloss.Color("#263E3F"),
		Error:       lipgloss.Color("#FC9581"),
		FooterFG:    lipgloss.Color("#8C7662"),
		FooterBG:    lipgloss.Color("#2A1F29"),
		HelpKey:     lipgloss.Color("#DB924B"),
		HelpValue:   lipgloss.Color("#C59F60"),
		BorderStyle: "rounded",
	}
}

// ThemeFromConfig applies cfg over base. Empty colors keep base values.
func ThemeFromConfig(cfg config.ThemeConfig, base Theme) Theme {
	th := base
	set := func(val config.ColorValue, dst *color.Color) {
		if val != "" {
			*dst = lipgloss.Color(string(val))
		}
	}
	set(cfg.Accent, &th.Accent)
	set(cfg.Text, &th.Text)
	set(cfg.Muted, &th.Muted)
	set(cfg.Background, &th.Background)
	set(cfg.HeaderFG, &th.HeaderFG)
	set(cfg.HeaderBG, &th.HeaderBG)
	set(cfg.SelectedFG, &th.SelectedFG)
	set(cfg.SelectedBG, &th.SelectedBG)
	set(cfg.Link, &th.Link)
	set(cfg.Unavailable, &th.Unavailable)
	set(cfg.Score, &th.Score)
	set(cfg.BadgeFG, &th.BadgeFG)
	set(cfg.BadgeBG, &th.BadgeBG)
	set(cfg.Error, &th.Error)
	set(cfg.FooterFG, &th.FooterFG)
	set(cfg.FooterBG, &th.FooterBG)
	set(cfg.HelpKey, &th.HelpKey)
	set(cfg.HelpValue, &th.HelpValue)
	if cfg.BorderStyle != "" {
		th.BorderStyle = cfg.BorderStyle
	}
	th.BorderStyle = normalizeBorderStyle(th.BorderStyle)
	return th
}

// ThemeSet holds the selectable palettes.
type ThemeSet map[prefs.Theme]Theme

// NewThemeSet builds the coffee and light palettes, applying any configured
// overrides. It also returns the configured names that are not selectable.
func NewThemeSet(cfgs map[string]config.ThemeConfig) (ThemeSet, []string) {
	set := ThemeSet{}
	for _, name := range prefs.Themes {
		set[name] = ThemeFromConfig(cfgs[string(name)], builtinTheme(name))
	}
	var ignored []string
	for name := range cfgs {
		if _, ok := prefs.ParseTheme(name); !ok {
			ignored = append(ignored, name)
		}
	}
	return set, ignored
}

// Get returns the palette for name, falling back to the built-in palette.
func (s ThemeSet) Get(name prefs.Theme) Theme {
	if th, ok := s[name]; ok {
		return th
	}
	return builtinTheme(name)
}

func normalizeBorderStyle(val string) string {
	switch strings.TrimSpace(strings.ToLower(val)) {
	case "rounded", "round":
		return "rounded"
	default:
		return "normal"
	}
}

func borderForTheme(th Theme) lipgloss.Border {
	if normalizeBorderStyle(th.BorderStyle) == "rounded" {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

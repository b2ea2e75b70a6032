// Package config defines the gamecat configuration file and merges a user
// file over the embedded defaults.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the merged configuration.
type Config struct {
	Source      SourceConfig           `yaml:"source" yamlcomment:"Where the game catalog is fetched from"`
	Preferences PreferencesConfig      `yaml:"preferences" yamlcomment:"Where display preferences are stored"`
	Themes      map[string]ThemeConfig `yaml:"themes" yamlcomment:"Color themes keyed by name"`
}

// SourceConfig selects the catalog feed.
type SourceConfig struct {
	URL     string `yaml:"url,omitempty" yamlcomment:"HTTP URL returning a JSON array of games"`
	File    string `yaml:"file,omitempty" yamlcomment:"Local JSON file used instead of url"`
	Timeout string `yaml:"timeout,omitempty" yamlcomment:"HTTP timeout (Go duration, e.g. 15s)"`
}

// TimeoutDuration parses Timeout. An empty value yields fallback.
func (s SourceConfig) TimeoutDuration(fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(s.Timeout)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid source timeout %q: %w", s.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid source timeout %q: must be positive", s.Timeout)
	}
	return d, nil
}

// PreferencesConfig selects the preference backend.
type PreferencesConfig struct {
	Store string `yaml:"store,omitempty" yamlcomment:"Backend: file, sqlite, or memory"`
	Path  string `yaml:"path,omitempty" yamlcomment:"Backend location (default: user config dir)"`
	Key   string `yaml:"key,omitempty" yamlcomment:"Slot name the preferences are stored under"`
}

// ColorValue stores a color token (ANSI number or hex) and marshals numerics as YAML ints.
type ColorValue string

func (c ColorValue) MarshalYAML() (interface{}, error) {
	if c == "" {
		return "", nil
	}
	s := string(c)
	if _, err := strconv.Atoi(s); err == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}, nil
	}
	return s, nil
}

func (c *ColorValue) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*c = ""
		return nil
	}
	*c = ColorValue(value.Value)
	return nil
}

// ThemeConfig is one named palette. Empty colors inherit from the built-in theme.
type ThemeConfig struct {
	Accent      ColorValue `yaml:"accent,omitempty" yamlcomment:"Title and active header color"`
	Text        ColorValue `yaml:"text,omitempty" yamlcomment:"Body text color"`
	Muted       ColorValue `yaml:"muted,omitempty" yamlcomment:"Secondary text color"`
	Background  ColorValue `yaml:"background,omitempty" yamlcomment:"Panel background"`
	HeaderFG    ColorValue `yaml:"header_fg,omitempty" yamlcomment:"Table header foreground"`
	HeaderBG    ColorValue `yaml:"header_bg,omitempty" yamlcomment:"Table header background"`
	SelectedFG  ColorValue `yaml:"selected_fg,omitempty" yamlcomment:"Selected row foreground"`
	SelectedBG  ColorValue `yaml:"selected_bg,omitempty" yamlcomment:"Selected row background"`
	Link        ColorValue `yaml:"link,omitempty" yamlcomment:"Game title color"`
	Unavailable ColorValue `yaml:"unavailable,omitempty" yamlcomment:"Struck-through title color"`
	Score       ColorValue `yaml:"score,omitempty" yamlcomment:"Review score color"`
	BadgeFG     ColorValue `yaml:"badge_fg,omitempty" yamlcomment:"Tag badge foreground"`
	BadgeBG     ColorValue `yaml:"badge_bg,omitempty" yamlcomment:"Tag badge background"`
	Error       ColorValue `yaml:"error,omitempty" yamlcomment:"Error message color"`
	FooterFG    ColorValue `yaml:"footer_fg,omitempty" yamlcomment:"Footer foreground"`
	FooterBG    ColorValue `yaml:"footer_bg,omitempty" yamlcomment:"Footer background"`
	HelpKey     ColorValue `yaml:"help_key,omitempty" yamlcomment:"Help key labels"`
	HelpValue   ColorValue `yaml:"help_value,omitempty" yamlcomment:"Help descriptions"`
	BorderStyle string     `yaml:"border_style,omitempty" yamlcomment:"Border style (normal|rounded)"`
}

// Overlay returns t with every non-empty field of o applied on top.
func (t ThemeConfig) Overlay(o ThemeConfig) ThemeConfig {
	set := func(dst *ColorValue, v ColorValue) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Accent, o.Accent)
	set(&t.Text, o.Text)
	set(&t.Muted, o.Muted)
	set(&t.Background, o.Background)
	set(&t.HeaderFG, o.HeaderFG)
	set(&t.HeaderBG, o.HeaderBG)
	set(&t.SelectedFG, o.SelectedFG)
	set(&t.SelectedBG, o.SelectedBG)
	set(&t.Link, o.Link)
	set(&t.Unavailable, o.Unavailable)
	set(&t.Score, o.Score)
	set(&t.BadgeFG, o.BadgeFG)
	set(&t.BadgeBG, o.BadgeBG)
	set(&t.Error, o.Error)
	set(&t.FooterFG, o.FooterFG)
	set(&t.FooterBG, o.FooterBG)
	set(&t.HelpKey, o.HelpKey)
	set(&t.HelpValue, o.HelpValue)
	if o.BorderStyle != "" {
		t.BorderStyle = o.BorderStyle
	}
	return t
}

// Merge overlays o onto c: non-empty scalars replace, themes merge per field.
func (c Config) Merge(o Config) Config {
	if o.Source.URL != "" {
		c.Source.URL = o.Source.URL
		// An explicit URL wins over an inherited file.
		c.Source.File = ""
	}
	if o.Source.File != "" {
		c.Source.File = o.Source.File
	}
	if o.Source.Timeout != "" {
		c.Source.Timeout = o.Source.Timeout
	}
	if o.Preferences.Store != "" {
		c.Preferences.Store = o.Preferences.Store
	}
	if o.Preferences.Path != "" {
		c.Preferences.Path = o.Preferences.Path
	}
	if o.Preferences.Key != "" {
		c.Preferences.Key = o.Preferences.Key
	}

	themes := make(map[string]ThemeConfig, len(c.Themes)+len(o.Themes))
	for name, th := range c.Themes {
		themes[name] = th
	}
	for name, th := range o.Themes {
		themes[name] = themes[name].Overlay(th)
	}
	c.Themes = themes
	return c
}

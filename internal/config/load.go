package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gamecat/pkg/settings"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// DefaultConfigYAML returns a copy of the embedded default config.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default parses the embedded configuration.
func Default() (Config, error) {
	embeddedOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedErr = errors.New("embedded default config is empty")
			return
		}
		embedded, embeddedErr = Parse(embeddedDefaultConfig, "yaml")
		if embeddedErr == nil && len(embedded.Themes) == 0 {
			embeddedErr = errors.New("default config is missing themes")
		}
	})
	return embedded, embeddedErr
}

// Parse decodes a config document. format is "yaml" or "toml".
// TOML documents are converted through YAML so both share one decoder.
func Parse(data []byte, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode yaml config: %w", err)
		}
	case "toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return cfg, fmt.Errorf("decode toml config: %w", err)
		}
		bridged, err := yaml.Marshal(doc)
		if err != nil {
			return cfg, fmt.Errorf("convert toml config: %w", err)
		}
		if err := yaml.Unmarshal(bridged, &cfg); err != nil {
			return cfg, fmt.Errorf("decode toml config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

// FormatForPath picks the decoder from a file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

// DefaultUserPaths lists the files searched when no --config-file is given.
func DefaultUserPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	base := filepath.Join(dir, settings.CliBinaryName)
	return []string{
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
		filepath.Join(base, "config.toml"),
	}
}

// ResolvePath returns explicit when set, else the first existing default user path.
func ResolvePath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	for _, p := range DefaultUserPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load merges the file at path over the embedded defaults. An empty path
// returns the defaults. A missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config file %s not found", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	user, err := Parse(data, FormatForPath(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.Merge(user), nil
}

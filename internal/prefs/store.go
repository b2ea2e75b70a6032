package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"
)

// Store loads and saves UserPreferences in a single KV slot.
type Store struct {
	kv  KV
	key string
	log logr.Logger
}

// NewStore returns a store writing to slot key of kv.
func NewStore(kv KV, key string, log logr.Logger) *Store {
	return &Store{kv: kv, key: key, log: log}
}

// Key returns the slot name.
func (s *Store) Key() string {
	return s.key
}

// Load reads the slot. Absent, unreadable, or unparsable values yield the
// defaults; a field that is missing or holds an unknown value falls back to
// its own default while the other field is kept.
func (s *Store) Load() UserPreferences {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.log.V(1).Info("preferences unreadable, using defaults", "key", s.key, "error", err.Error())
		return Defaults()
	}
	if !ok {
		s.log.V(1).Info("no stored preferences, using defaults", "key", s.key)
		return Defaults()
	}
	return decode(raw, s.log)
}

// Save serializes p and overwrites the slot. Unknown field values are
// normalized to defaults before writing.
func (s *Store) Save(p UserPreferences) error {
	data, err := json.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	s.log.V(1).Info("preferences saved", "key", s.key, "value", string(data))
	return nil
}

func decode(raw string, log logr.Logger) UserPreferences {
	out := Defaults()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		log.V(1).Info("stored preferences corrupt, using defaults", "raw", raw)
		return out
	}

	if msg, ok := fields["themeName"]; ok {
		var name string
		if json.Unmarshal(msg, &name) == nil {
			if t, known := ParseTheme(name); known {
				out.ThemeName = t
			}
		}
	}
	if msg, ok := fields["viewMode"]; ok {
		var name string
		if json.Unmarshal(msg, &name) == nil {
			if v, known := ParseViewMode(name); known {
				out.ViewMode = v
			}
		}
	}
	return out
}

package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/oakwood-commons/gamecat/pkg/settings"
)

// DefaultPath returns name inside the per-user gamecat config directory.
func DefaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err != nil {
			dir = "."
		}
		dir = filepath.Join(dir, ".config")
	}
	return filepath.Join(dir, settings.CliBinaryName, name)
}

// ErrCorruptFile is returned when the preference file is not a JSON object
// of strings.
var ErrCorruptFile = errors.New("corrupt preference file")

// CorruptSuffix is appended to a corrupt preference file when Set moves it
// aside.
const CorruptSuffix = ".corrupt"

// FileKV stores all slots as one JSON object in a file.
// A missing or unreadable file behaves as an empty store.
type FileKV struct {
	mu   sync.Mutex
	path string
}

// NewFileKV returns a store backed by path. The file is created on first Set.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Path returns the backing file.
func (f *FileKV) Path() string {
	return f.path
}

func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := slots[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	switch {
	case errors.Is(err, ErrCorruptFile):
		// Keep the unreadable content next to the fresh file.
		if err := os.Rename(f.path, f.path+CorruptSuffix); err != nil {
			return fmt.Errorf("move corrupt preference file aside: %w", err)
		}
		slots = map[string]string{}
	case err != nil:
		return err
	}
	slots[key] = value

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preference file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create preference directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".preferences-*.json")
	if err != nil {
		return fmt.Errorf("create temp preference file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write preference file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close preference file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace preference file: %w", err)
	}
	return nil
}

// read loads the slot map. A missing file is an empty map; a file that is
// not a JSON object of strings is reported as an error.
func (f *FileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preference file: %w", err)
	}
	slots := map[string]string{}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorruptFile, f.path, err)
	}
	return slots, nil
}

package prefs

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// KV is the minimal durable key-value slot store preferences are kept in.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any prior value.
	Set(key, value string) error
}

// Closer is implemented by backends holding resources.
type Closer interface {
	Close() error
}

// ErrUnknownStore is returned by Open for an unrecognized backend name.
var ErrUnknownStore = errors.New("unknown preference store")

// StoreKind names a KV backend.
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreFile   StoreKind = "file"
	StoreSQLite StoreKind = "sqlite"
)

// StoreKinds lists Open's accepted backend names.
var StoreKinds = []StoreKind{StoreFile, StoreSQLite, StoreMemory}

// Open builds the backend named kind. An empty path selects the backend's
// default location under the user config directory.
func Open(kind StoreKind, path string) (KV, error) {
	switch StoreKind(strings.ToLower(string(kind))) {
	case StoreMemory:
		return NewMemoryKV(), nil
	case StoreFile, "":
		if path == "" {
			path = DefaultPath("preferences.json")
		}
		return NewFileKV(path), nil
	case StoreSQLite:
		if path == "" {
			path = DefaultPath("preferences.sqlite")
		}
		return OpenSQLiteKV(path)
	default:
		return nil, fmt.Errorf("%w: %q (expected memory, file, or sqlite)", ErrUnknownStore, kind)
	}
}

// MemoryKV keeps slots in process memory.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

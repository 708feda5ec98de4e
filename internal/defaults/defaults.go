// Package defaults holds the compiled-in fallback values consulted last during
// configuration resolution. The values may be overridden by embedding code
// before the configuration is loaded.
package defaults

import (
	"errors"
	"maps"
	"regexp"
	"sync"
)

var (
	// ErrInvalidName indicates a setting name that is not upper-case with underscores.
	ErrInvalidName = errors.New("setting name must match [A-Z][A-Z0-9_]*")
)

var namePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// builtin lists the settings with a non-null compiled-in value. Every other
// setting defaults to null.
var builtin = map[string]string{
	"CENTRAL": "loghub.net",
}

// Store provides access to default setting values.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string) error
	Unset(name string) error
	Snapshot() map[string]string
}

// MemoryStore keeps defaults in-memory and guards access with a RWMutex.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore initialises a store with a copy of the compiled-in defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: Builtin(),
	}
}

// Builtin returns a copy of the compiled-in defaults.
func Builtin() map[string]string {
	return maps.Clone(builtin)
}

// Get returns the default for name. The second result is false when the
// default is null.
func (s *MemoryStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[name]
	return v, ok
}

// Set overrides the default for name.
func (s *MemoryStore) Set(name, value string) error {
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}

	s.mu.Lock()
	s.values[name] = value
	s.mu.Unlock()

	return nil
}

// Unset makes the default for name null.
func (s *MemoryStore) Unset(name string) error {
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}

	s.mu.Lock()
	delete(s.values, name)
	s.mu.Unlock()

	return nil
}

// Snapshot returns a copy of every non-null default.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.values)
}

package memory

import (
	"maps"
	"strings"
	"sync"

	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds fixtodict settings in memory. Keys are flat; a table
// is either a map under its own key or a set of "table.member" keys.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns a store seeded with the given values, if any.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any)}
	for _, m := range seed {
		maps.Copy(s.values, m)
	}
	return s
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// value returns the stored value of key when it has type T.
func value[T any](s *ConfigStore, key string) (T, bool) {
	val, _ := s.Get(key)
	v, ok := val.(T)
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := value[string](s, key)
	return v
}

func (s *ConfigStore) GetBool(key string) bool {
	v, _ := value[bool](s, key)
	return v
}

// GetInt accepts the integer shapes produced by TOML and JSON decoding.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// GetStringSlice drops non-string members of a decoded array.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// GetStringMap merges a table stored under key with direct "key.member"
// entries. Nested members and non-string values are skipped.
func (s *ConfigStore) GetStringMap(key string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string)
	switch v := s.values[key].(type) {
	case map[string]string:
		maps.Copy(out, v)
	case map[string]any:
		for k, val := range v {
			if str, ok := val.(string); ok {
				out[k] = str
			}
		}
	}
	for k, val := range s.values {
		member, ok := strings.CutPrefix(k, key+".")
		if !ok || strings.Contains(member, ".") {
			continue
		}
		if str, ok := val.(string); ok {
			out[member] = str
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

func (s *ConfigStore) Path() string { return ":memory:" }

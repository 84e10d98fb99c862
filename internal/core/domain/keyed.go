package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Keyed maps primary keys to entities of one kind.
// It marshals with keys in ascending, case-insensitive order so that
// regenerated documents diff cleanly.
type Keyed[T any] map[string]T

// SortedKeys returns the keys in output order.
func (k Keyed[T]) SortedKeys() []string {
	return SortKeys(k)
}

// MarshalJSON implements json.Marshaler with deterministic key order.
func (k Keyed[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range k.SortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(k[key])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SortKeys returns map keys in ascending case-insensitive order.
// Keys equal under case folding fall back to byte order.
func SortKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

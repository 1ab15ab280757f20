package store

import (
	"path"
	"sort"
	"strings"
)

// Store is an in-memory mapping from normalized paths to payload bytes.
// The zero value is not usable; construct with New.
type Store struct {
	entries map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string][]byte)}
}

// Normalize canonicalizes a path for use as a store key: backslashes become
// forward slashes, leading slashes and "." segments are removed, and ".."
// segments resolve lexically. Returns "" when nothing remains.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	if p == "." || p == ".." {
		return ""
	}
	return p
}

// Get returns the payload stored at the given path.
func (s *Store) Get(p string) ([]byte, bool) {
	payload, ok := s.entries[Normalize(p)]
	return payload, ok
}

// Has reports whether a payload exists at the given path.
func (s *Store) Has(p string) bool {
	_, ok := s.entries[Normalize(p)]
	return ok
}

// Set stores a payload at the given path, replacing any existing entry.
// Paths that normalize to the empty string are ignored.
func (s *Store) Set(p string, payload []byte) {
	key := Normalize(p)
	if key == "" {
		return
	}
	s.entries[key] = payload
}

// Delete removes the entry at the given path if present.
func (s *Store) Delete(p string) {
	delete(s.entries, Normalize(p))
}

// Keys returns every stored path in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clone returns an independent copy of the store. The key set is copied;
// payload slices are shared because entries are treated as immutable.
func (s *Store) Clone() *Store {
	clone := &Store{entries: make(map[string][]byte, len(s.entries))}
	for key, payload := range s.entries {
		clone.entries[key] = payload
	}
	return clone
}

package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"packsmith/internal/store"
)

// ReadText returns the payload at path decoded as UTF-8 text.
func ReadText(s *store.Store, path string) (string, bool) {
	payload, ok := s.Get(path)
	if !ok {
		return "", false
	}
	return string(payload), true
}

// WriteText stores text at path.
func WriteText(s *store.Store, path, text string) {
	s.Set(path, []byte(text))
}

// ReadJSON parses the payload at path as a JSON object. Returns ok=false when
// the entry is absent or the payload does not decode; callers decide whether
// that is fatal.
func ReadJSON(s *store.Store, path string) (map[string]any, bool) {
	payload, ok := s.Get(path)
	if !ok {
		return nil, false
	}
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, false
	}
	return doc, true
}

// WriteJSON serializes doc with stable formatting and stores it at path.
func WriteJSON(s *store.Store, path string, doc any) error {
	payload, err := Marshal(doc)
	if err != nil {
		return err
	}
	s.Set(path, payload)
	return nil
}

// Marshal renders a document with sorted object keys, two-space indentation,
// and a trailing newline. encoding/json sorts map keys, which is what keeps
// repeated round trips byte-identical.
func Marshal(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

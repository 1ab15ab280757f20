package pack

import (
	"errors"
	"fmt"

	"packsmith/internal/document"
	"packsmith/internal/store"
)

// MetaPath is the fixed location of the package metadata document.
const MetaPath = "pack.mcmeta"

// IconPath is the fixed location of the package icon.
const IconPath = "pack.png"

// ErrInvalidFormat reports a pack format that is not a positive integer.
var ErrInvalidFormat = errors.New("pack format must be a positive integer")

// Package is the full editable unit: a name and the store holding its content.
type Package struct {
	Name  string
	Store *store.Store
}

// New returns an empty package with the given name.
func New(name string) *Package {
	return &Package{Name: name, Store: store.New()}
}

// Clone returns a package backed by an independent copy of the store.
func (p *Package) Clone() *Package {
	return &Package{Name: p.Name, Store: p.Store.Clone()}
}

// Settings are the caller-editable metadata fields.
type Settings struct {
	Format      int
	Description string
}

// DefaultSettings returns the baseline metadata for a new package.
func DefaultSettings() Settings {
	return Settings{Format: 34, Description: "Edited with packsmith"}
}

// Metadata is the declared metadata read back from a package.
type Metadata struct {
	Format      int
	Description string
}

// ApplySettings validates settings, writes the metadata document into a
// cloned store, and returns the new package. The input is never mutated.
func ApplySettings(p *Package, settings Settings) (*Package, error) {
	if settings.Format <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFormat, settings.Format)
	}
	next := p.Clone()
	if err := WriteMetadata(next.Store, Metadata{Format: settings.Format, Description: settings.Description}); err != nil {
		return nil, err
	}
	return next, nil
}

// ReadMetadata returns the declared metadata, or ok=false when the document
// is absent, unparseable, or lacks a numeric format field.
func ReadMetadata(p *Package) (Metadata, bool) {
	doc, ok := document.ReadJSON(p.Store, MetaPath)
	if !ok {
		return Metadata{}, false
	}
	section, ok := doc["pack"].(map[string]any)
	if !ok {
		return Metadata{}, false
	}
	format, ok := section["pack_format"].(float64)
	if !ok {
		return Metadata{}, false
	}
	meta := Metadata{Format: int(format)}
	if desc, ok := section["description"].(string); ok {
		meta.Description = desc
	}
	return meta, true
}

// WriteMetadata serializes metadata into the store at MetaPath.
func WriteMetadata(s *store.Store, meta Metadata) error {
	doc := map[string]any{
		"pack": map[string]any{
			"pack_format": meta.Format,
			"description": meta.Description,
		},
	}
	return document.WriteJSON(s, MetaPath, doc)
}

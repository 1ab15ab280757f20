package font

import (
	"errors"
	"fmt"
	"strings"

	"packsmith/internal/document"
	"packsmith/internal/pack"
	"packsmith/internal/resource"
)

// Reserved private-use range for generated glyphs, inclusive on both ends.
const (
	RangeStart rune = 0xE000
	RangeEnd   rune = 0xF8FF

	// scanOffset is where allocation starts; externally-authored packs tend
	// to allocate from the range start, so beginning mid-range reduces
	// collisions when packs are merged.
	scanOffset rune = 0xE800
)

// RangeSize is the number of allocatable codepoints.
const RangeSize = int(RangeEnd-RangeStart) + 1

var (
	// ErrCodepointSpaceExhausted reports that every reserved codepoint is taken.
	ErrCodepointSpaceExhausted = errors.New("private-use codepoint space exhausted")
	// ErrCodepointInUse reports a glyph registration that collides with an
	// existing provider in the same font document.
	ErrCodepointInUse = errors.New("codepoint already assigned in font")
	// ErrInvalidGlyph reports glyph metrics that cannot be recorded.
	ErrInvalidGlyph = errors.New("invalid glyph")
)

// Allocate returns the first free codepoint in the reserved range, scanning
// from scanOffset to the range end and then wrapping to the range start.
func Allocate(used map[rune]struct{}) (rune, error) {
	for cp := scanOffset; cp <= RangeEnd; cp++ {
		if _, taken := used[cp]; !taken {
			return cp, nil
		}
	}
	for cp := RangeStart; cp < scanOffset; cp++ {
		if _, taken := used[cp]; !taken {
			return cp, nil
		}
	}
	return 0, ErrCodepointSpaceExhausted
}

// UsedCodepoints collects every character appearing in any bitmap provider's
// chars rows, left to right, top to bottom. U+0000 is the empty-cell
// placeholder and is not a used codepoint.
func UsedCodepoints(fontDoc map[string]any) map[rune]struct{} {
	used := make(map[rune]struct{})
	providers, _ := fontDoc["providers"].([]any)
	for _, raw := range providers {
		provider, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		rows, _ := provider["chars"].([]any)
		for _, rawRow := range rows {
			row, ok := rawRow.(string)
			if !ok {
				continue
			}
			for _, cp := range row {
				if cp == 0 {
					continue
				}
				used[cp] = struct{}{}
			}
		}
	}
	return used
}

// Glyph describes one bitmap glyph registration.
type Glyph struct {
	Char   rune
	File   string // bitmap resource id, extension included (e.g. "mrwm:font/coin.png")
	Height int
	Ascent int
	Data   []byte // optional image bytes copied into the pack
}

// AddGlyph appends a single-character bitmap provider to the named font
// document, creating the document if absent, and copies the image bytes when
// supplied. Registrations that overlap an existing provider's characters fail
// with ErrCodepointInUse. Returns a new package; the input is never mutated.
func AddGlyph(p *pack.Package, ns, fontKey string, glyph Glyph) (*pack.Package, error) {
	if glyph.Char == 0 {
		return nil, fmt.Errorf("%w: character is required", ErrInvalidGlyph)
	}
	if strings.TrimSpace(glyph.File) == "" {
		return nil, fmt.Errorf("%w: bitmap file is required", ErrInvalidGlyph)
	}
	if glyph.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrInvalidGlyph)
	}
	if glyph.Ascent > glyph.Height {
		return nil, fmt.Errorf("%w: ascent %d exceeds height %d", ErrInvalidGlyph, glyph.Ascent, glyph.Height)
	}
	if ns == "" {
		ns = resource.DefaultNamespace
	}
	if fontKey == "" {
		fontKey = "default"
	}

	docPath := resource.FontDocPath(ns, fontKey)
	doc, ok := document.ReadJSON(p.Store, docPath)
	if !ok {
		doc = map[string]any{"providers": []any{}}
	}
	if _, taken := UsedCodepoints(doc)[glyph.Char]; taken {
		return nil, fmt.Errorf("%w: U+%04X in %s", ErrCodepointInUse, glyph.Char, docPath)
	}

	providers, _ := doc["providers"].([]any)
	providers = append(providers, map[string]any{
		"type":   "bitmap",
		"file":   glyph.File,
		"height": glyph.Height,
		"ascent": glyph.Ascent,
		"chars":  []any{string(glyph.Char)},
	})
	doc["providers"] = providers

	next := p.Clone()
	if err := document.WriteJSON(next.Store, docPath, doc); err != nil {
		return nil, err
	}
	if len(glyph.Data) > 0 {
		next.Store.Set(BitmapAssetPath(glyph.File), glyph.Data)
	}
	return next, nil
}

// BitmapAssetPath converts a font provider's file identifier into its storage
// path. Unlike model references the identifier carries its extension.
func BitmapAssetPath(file string) string {
	id := resource.Parse(file)
	return fmt.Sprintf("assets/%s/textures/%s", id.Namespace, id.Path)
}

// Providers returns the decoded provider list of a font document, in order.
func Providers(fontDoc map[string]any) []map[string]any {
	raw, _ := fontDoc["providers"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if provider, ok := entry.(map[string]any); ok {
			out = append(out, provider)
		}
	}
	return out
}

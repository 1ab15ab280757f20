package migrate

import (
	"errors"
	"fmt"
	"strings"

	"packsmith/internal/document"
	"packsmith/internal/override"
	"packsmith/internal/pack"
	"packsmith/internal/resource"
)

// ErrInvalidTarget reports a target format that is not a positive integer.
var ErrInvalidTarget = errors.New("target format must be a positive integer")

// Result carries the converted package and a human-readable account of what
// changed and what could not be converted.
type Result struct {
	Package  *pack.Package
	Changes  []string
	Warnings []string
}

// Convert rewrites the package's declared format to target, converting item
// override documents whenever the change crosses the legacy/modern boundary.
// The input package is never mutated; when nothing needs converting the
// returned package may be the input itself.
func Convert(p *pack.Package, target int) (Result, error) {
	if target <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}

	result := Result{}
	current := 0
	description := pack.DefaultSettings().Description
	if meta, ok := pack.ReadMetadata(p); ok {
		current = meta.Format
		description = meta.Description
	} else {
		result.Warnings = append(result.Warnings, "pack format could not be determined, assuming 0")
	}

	if current == target {
		result.Package = p
		result.Warnings = append(result.Warnings, fmt.Sprintf("pack is already at format %d", target))
		return result, nil
	}

	next := p.Clone()
	if err := pack.WriteMetadata(next.Store, pack.Metadata{Format: target, Description: description}); err != nil {
		return Result{}, err
	}
	result.Changes = append(result.Changes, fmt.Sprintf("%s: pack_format %d -> %d", pack.MetaPath, current, target))

	switch {
	case current < pack.FormatBoundary && target >= pack.FormatBoundary:
		upgradeOverrides(next, &result)
	case current >= pack.FormatBoundary && target < pack.FormatBoundary:
		downgradeOverrides(next, &result)
	}

	result.Package = next
	return result, nil
}

// upgradeOverrides turns every legacy overrides array into a modern
// range-dispatch document, keyed off the models/item naming convention.
func upgradeOverrides(p *pack.Package, result *Result) {
	converted := 0
	for _, key := range p.Store.Keys() {
		ns, item, ok := splitModelDocPath(key)
		if !ok {
			continue
		}
		doc, ok := document.ReadJSON(p.Store, key)
		if !ok {
			continue
		}
		overrides := override.LegacyOverrides(doc)
		if len(overrides) == 0 {
			continue
		}

		dispatch := &override.RangeDispatch{
			Property: override.PropertyCustomModelData,
			Fallback: override.Leaf{Model: resource.ItemModelID(ns, item).String()},
		}
		for _, entry := range overrides {
			dispatch.Upsert(entry.Tag, override.Leaf{Model: entry.Model})
		}

		itemPath := resource.ItemDocPath(ns, item)
		if err := document.WriteJSON(p.Store, itemPath, map[string]any{"model": override.EncodeModel(dispatch)}); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", itemPath, err))
			continue
		}
		delete(doc, "overrides")
		if err := document.WriteJSON(p.Store, key, doc); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", key, err))
			continue
		}
		result.Changes = append(result.Changes,
			fmt.Sprintf("created %s (%d entries)", itemPath, len(dispatch.Entries)),
			fmt.Sprintf("removed overrides from %s", key))
		converted++
	}
	if converted == 0 {
		result.Warnings = append(result.Warnings, "no legacy item overrides to convert")
	}
}

// downgradeOverrides folds every modern custom-model-data dispatch back into
// legacy overrides. The modern document is deleted afterwards; unlike
// upgrades there is no emptied shell to keep.
func downgradeOverrides(p *pack.Package, result *Result) {
	converted := 0
	for _, key := range p.Store.Keys() {
		ns, item, ok := splitItemDocPath(key)
		if !ok {
			continue
		}
		doc, ok := document.ReadJSON(p.Store, key)
		if !ok {
			continue
		}
		dispatch, ok := override.DecodeModel(doc["model"]).(*override.RangeDispatch)
		if !ok || !dispatch.IsCustomModelData() {
			continue
		}

		legacyPath := resource.ModelDocPath(ns, item)
		legacyDoc, ok := document.ReadJSON(p.Store, legacyPath)
		if !ok {
			legacyDoc = override.NewLegacyDoc(resource.ID{Namespace: ns, Path: item})
		}
		merged := 0
		for _, entry := range dispatch.Entries {
			leaf, ok := entry.Model.(override.Leaf)
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: entry at threshold %v has a nested model and was dropped", key, entry.Threshold))
				continue
			}
			override.UpsertLegacyOverride(legacyDoc, entry.Threshold, leaf.Model)
			merged++
		}

		if err := document.WriteJSON(p.Store, legacyPath, legacyDoc); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", legacyPath, err))
			continue
		}
		p.Store.Delete(key)
		result.Changes = append(result.Changes,
			fmt.Sprintf("merged %d overrides into %s", merged, legacyPath),
			fmt.Sprintf("removed %s", key))
		converted++
	}
	if converted == 0 {
		result.Warnings = append(result.Warnings, "no modern item definitions to convert")
	}
}

// splitModelDocPath matches assets/<ns>/models/item/<item>.json where <item>
// is a direct child. Generated variant models live under the same directory
// but carry no overrides array, so they fall through the caller's checks.
func splitModelDocPath(key string) (ns, item string, ok bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 5 || parts[0] != "assets" || parts[2] != "models" || parts[3] != "item" {
		return "", "", false
	}
	item, found := strings.CutSuffix(parts[4], ".json")
	if !found || item == "" {
		return "", "", false
	}
	return parts[1], item, true
}

// splitItemDocPath matches assets/<ns>/items/<item>.json.
func splitItemDocPath(key string) (ns, item string, ok bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 4 || parts[0] != "assets" || parts[2] != "items" {
		return "", "", false
	}
	item, found := strings.CutSuffix(parts[3], ".json")
	if !found || item == "" {
		return "", "", false
	}
	return parts[1], item, true
}

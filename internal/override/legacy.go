package override

import (
	"sort"

	"packsmith/internal/resource"
)

// LegacyOverride is one custom-model-data entry of a legacy model document's
// overrides array.
type LegacyOverride struct {
	Tag   float64
	Model string
}

// NewLegacyDoc synthesizes a baseline model document for an item: the default
// silhouette parent plus a layer0 texture pointing at the item's unmodified
// appearance.
func NewLegacyDoc(item resource.ID) map[string]any {
	return map[string]any{
		"parent": resource.DefaultModelParent(item.Path),
		"textures": map[string]any{
			"layer0": resource.ItemModelID(item.Namespace, item.Path).String(),
		},
	}
}

// LegacyOverrides extracts every override carrying a numeric custom-model-data
// predicate. Overrides on other predicates (or with non-numeric tags) are
// skipped.
func LegacyOverrides(doc map[string]any) []LegacyOverride {
	raw, ok := doc["overrides"].([]any)
	if !ok {
		return nil
	}
	var out []LegacyOverride
	for _, entry := range raw {
		override, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		tag, model, ok := legacyEntry(override)
		if !ok {
			continue
		}
		out = append(out, LegacyOverride{Tag: tag, Model: model})
	}
	return out
}

// UpsertLegacyOverride replaces or inserts the override for tag in doc's
// overrides array, re-establishing ascending tag order. Overrides on other
// predicates are preserved ahead of the tagged ones.
func UpsertLegacyOverride(doc map[string]any, tag float64, model string) {
	raw, _ := doc["overrides"].([]any)
	replaced := false
	for _, entry := range raw {
		override, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if existing, _, ok := legacyEntry(override); ok && existing == tag {
			override["model"] = model
			replaced = true
			break
		}
	}
	if !replaced {
		raw = append(raw, map[string]any{
			"model":     model,
			"predicate": map[string]any{PredicateField: tag},
		})
	}
	sortLegacyOverrides(raw)
	doc["overrides"] = raw
}

func sortLegacyOverrides(raw []any) {
	sort.SliceStable(raw, func(i, j int) bool {
		return legacySortKey(raw[i]) < legacySortKey(raw[j])
	})
}

// legacySortKey orders tagged overrides ascending while keeping untagged ones
// (other predicates) at the front in their original order.
func legacySortKey(entry any) float64 {
	override, ok := entry.(map[string]any)
	if !ok {
		return -1
	}
	tag, _, ok := legacyEntry(override)
	if !ok {
		return -1
	}
	return tag
}

func legacyEntry(override map[string]any) (tag float64, model string, ok bool) {
	predicate, okPredicate := override["predicate"].(map[string]any)
	if !okPredicate {
		return 0, "", false
	}
	tag, okTag := predicate[PredicateField].(float64)
	if !okTag {
		return 0, "", false
	}
	model, _ = override["model"].(string)
	return tag, model, true
}

package override

import "sort"

// Wire constants of the modern item document schema.
const (
	TypeModel               = "minecraft:model"
	TypeRangeDispatch       = "minecraft:range_dispatch"
	PropertyCustomModelData = "minecraft:custom_model_data"

	// PredicateField is the legacy predicate key carrying the variant tag.
	PredicateField = "custom_model_data"
)

// Model is a node in a modern item document's model tree: a leaf reference,
// a range dispatch, or a raw passthrough for node shapes packsmith does not
// interpret.
type Model interface {
	modelNode()
}

// Leaf references a single model by resource identifier.
type Leaf struct {
	Model string
}

// DispatchEntry pairs a numeric threshold with the model selected at or above
// it.
type DispatchEntry struct {
	Threshold float64
	Model     Model
}

// RangeDispatch selects among entries by a numeric property, falling back to
// Fallback (which may be nil) when no threshold matches.
type RangeDispatch struct {
	Property string
	Entries  []DispatchEntry
	Fallback Model
}

// Raw preserves an unrecognized model node verbatim so rewriting a document
// never loses structure packsmith does not understand.
type Raw struct {
	Value any
}

func (Leaf) modelNode()           {}
func (*RangeDispatch) modelNode() {}
func (Raw) modelNode()            {}

// DecodeModel interprets a decoded JSON value as a model node. Unrecognized
// shapes come back as Raw; nil stays nil.
func DecodeModel(v any) Model {
	if v == nil {
		return nil
	}
	node, ok := v.(map[string]any)
	if !ok {
		return Raw{Value: v}
	}
	switch node["type"] {
	case TypeModel:
		if ref, ok := node["model"].(string); ok && len(node) == 2 {
			return Leaf{Model: ref}
		}
	case TypeRangeDispatch:
		property, ok := node["property"].(string)
		if !ok {
			break
		}
		dispatch := &RangeDispatch{Property: property}
		if entries, ok := node["entries"].([]any); ok {
			for _, raw := range entries {
				entry, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				threshold, ok := entry["threshold"].(float64)
				if !ok {
					continue
				}
				dispatch.Entries = append(dispatch.Entries, DispatchEntry{
					Threshold: threshold,
					Model:     DecodeModel(entry["model"]),
				})
			}
		}
		dispatch.Fallback = DecodeModel(node["fallback"])
		return dispatch
	}
	return Raw{Value: v}
}

// EncodeModel renders a model node back into a JSON-serializable value.
func EncodeModel(m Model) any {
	switch node := m.(type) {
	case nil:
		return nil
	case Leaf:
		return map[string]any{"type": TypeModel, "model": node.Model}
	case *RangeDispatch:
		entries := make([]any, 0, len(node.Entries))
		for _, entry := range node.Entries {
			entries = append(entries, map[string]any{
				"threshold": entry.Threshold,
				"model":     EncodeModel(entry.Model),
			})
		}
		encoded := map[string]any{
			"type":     TypeRangeDispatch,
			"property": node.Property,
			"entries":  entries,
		}
		if node.Fallback != nil {
			encoded["fallback"] = EncodeModel(node.Fallback)
		}
		return encoded
	case Raw:
		return node.Value
	}
	return nil
}

// Upsert replaces the entry matching threshold or inserts a new one, keeping
// entries strictly ascending.
func (d *RangeDispatch) Upsert(threshold float64, m Model) {
	for i, entry := range d.Entries {
		if entry.Threshold == threshold {
			d.Entries[i].Model = m
			return
		}
	}
	d.Entries = append(d.Entries, DispatchEntry{Threshold: threshold, Model: m})
	sort.SliceStable(d.Entries, func(i, j int) bool {
		return d.Entries[i].Threshold < d.Entries[j].Threshold
	})
}

// IsCustomModelData reports whether the dispatch selects on the custom model
// data property.
func (d *RangeDispatch) IsCustomModelData() bool {
	return d.Property == PropertyCustomModelData
}

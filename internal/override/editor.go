package override

import (
	"errors"
	"fmt"
	"strings"

	"packsmith/internal/document"
	"packsmith/internal/pack"
	"packsmith/internal/resource"
	"packsmith/internal/store"
)

var (
	// ErrInvalidVariantTag reports a variant tag outside the positive integers.
	ErrInvalidVariantTag = errors.New("variant tag must be a positive integer")
	// ErrMissingItem reports an empty item identifier.
	ErrMissingItem = errors.New("item id is required")
)

// Request describes one editor action: give item ItemID the visual variant
// VariantTag, backed by a generated model and the supplied texture bytes
// under Namespace.
type Request struct {
	ItemID     string
	VariantTag int
	Namespace  string
	Texture    []byte
}

// Apply upserts the variant into whichever override generation the package's
// declared format selects (absent metadata means legacy), writes the
// generated model document, and copies the texture bytes. It validates before
// touching anything and returns a new package; the input is never mutated.
func Apply(p *pack.Package, req Request) (*pack.Package, error) {
	if strings.TrimSpace(req.ItemID) == "" {
		return nil, ErrMissingItem
	}
	if req.VariantTag <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVariantTag, req.VariantTag)
	}

	item := resource.Parse(req.ItemID)
	ns := req.Namespace
	if ns == "" {
		ns = resource.DefaultNamespace
	}
	generated := resource.GeneratedModelID(ns, item.Path, req.VariantTag)

	meta, ok := pack.ReadMetadata(p)
	modern := ok && pack.IsModern(meta.Format)

	next := p.Clone()
	var err error
	if modern {
		err = upsertModern(next.Store, item, generated, req.VariantTag)
	} else {
		err = upsertLegacy(next.Store, item, generated, req.VariantTag)
	}
	if err != nil {
		return nil, err
	}
	if err := writeGenerated(next.Store, generated, item.Path, req.Texture); err != nil {
		return nil, err
	}
	return next, nil
}

func upsertLegacy(s *store.Store, item, generated resource.ID, tag int) error {
	docPath := resource.ModelDocPath(item.Namespace, item.Path)
	doc, ok := document.ReadJSON(s, docPath)
	if !ok {
		doc = NewLegacyDoc(item)
	}
	UpsertLegacyOverride(doc, float64(tag), generated.String())
	return document.WriteJSON(s, docPath, doc)
}

func upsertModern(s *store.Store, item, generated resource.ID, tag int) error {
	docPath := resource.ItemDocPath(item.Namespace, item.Path)
	doc, ok := document.ReadJSON(s, docPath)
	if !ok {
		doc = map[string]any{}
	}

	root := DecodeModel(doc["model"])
	dispatch, ok := root.(*RangeDispatch)
	if !ok || !dispatch.IsCustomModelData() {
		// Wrap whatever is there as the fallback; an absent root falls back
		// to the item's unmodified model.
		fallback := root
		if fallback == nil {
			fallback = Leaf{Model: resource.ItemModelID(item.Namespace, item.Path).String()}
		}
		dispatch = &RangeDispatch{Property: PropertyCustomModelData, Fallback: fallback}
	}
	dispatch.Upsert(float64(tag), Leaf{Model: generated.String()})

	doc["model"] = EncodeModel(dispatch)
	return document.WriteJSON(s, docPath, doc)
}

func writeGenerated(s *store.Store, generated resource.ID, item string, texture []byte) error {
	modelDoc := map[string]any{
		"parent": resource.DefaultModelParent(item),
		"textures": map[string]any{
			"layer0": generated.String(),
		},
	}
	if err := document.WriteJSON(s, resource.ModelPath(generated), modelDoc); err != nil {
		return err
	}
	if len(texture) > 0 {
		s.Set(resource.TexturePath(generated), texture)
	}
	return nil
}

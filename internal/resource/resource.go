package resource

import (
	"fmt"
	"strings"
)

// DefaultNamespace is the namespace assumed when an identifier omits one.
const DefaultNamespace = "minecraft"

// ID is a namespaced reference to a document or asset, rendered as
// "namespace:path".
type ID struct {
	Namespace string
	Path      string
}

// Parse splits an identifier on the first colon. A missing namespace falls
// back to DefaultNamespace.
func Parse(s string) ID {
	s = strings.TrimSpace(s)
	if ns, rest, ok := strings.Cut(s, ":"); ok {
		if ns == "" {
			ns = DefaultNamespace
		}
		return ID{Namespace: ns, Path: rest}
	}
	return ID{Namespace: DefaultNamespace, Path: s}
}

// String renders the identifier as "namespace:path".
func (id ID) String() string {
	ns := id.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return ns + ":" + id.Path
}

// IsZero reports whether the identifier carries no path.
func (id ID) IsZero() bool {
	return id.Path == ""
}

// ModelDocPath returns the legacy per-item model document path.
func ModelDocPath(ns, item string) string {
	return fmt.Sprintf("assets/%s/models/item/%s.json", ns, item)
}

// ItemDocPath returns the modern per-item definition document path.
func ItemDocPath(ns, item string) string {
	return fmt.Sprintf("assets/%s/items/%s.json", ns, item)
}

// FontDocPath returns the path of a named font document.
func FontDocPath(ns, key string) string {
	return fmt.Sprintf("assets/%s/font/%s.json", ns, key)
}

// ItemModelID returns the identifier of an item's unmodified model.
func ItemModelID(ns, item string) ID {
	return ID{Namespace: ns, Path: "item/" + item}
}

// GeneratedModelID returns the identifier of the generated variant model for
// an item and tag. The editor, migrator, and analyzer all rely on this exact
// construction.
func GeneratedModelID(ns, item string, tag int) ID {
	return ID{Namespace: ns, Path: fmt.Sprintf("item/%s_cmd_%d", item, tag)}
}

// ModelPath converts a model identifier into its storage path.
func ModelPath(id ID) string {
	return fmt.Sprintf("assets/%s/models/%s.json", id.Namespace, id.Path)
}

// TexturePath converts a texture identifier into its storage path.
func TexturePath(id ID) string {
	return fmt.Sprintf("assets/%s/textures/%s.png", id.Namespace, id.Path)
}

// handheldSuffixes selects the handheld silhouette for tool-like items. This
// is a best-effort default, not authoritative game data; users can edit the
// generated document afterwards.
var handheldSuffixes = []string{
	"_sword", "_axe", "_pickaxe", "_shovel", "_hoe", "fishing_rod",
}

// DefaultModelParent returns the baseline parent model for an item: handheld
// for tools and weapons, generated for everything else.
func DefaultModelParent(item string) string {
	for _, suffix := range handheldSuffixes {
		if strings.HasSuffix(item, suffix) {
			return DefaultNamespace + ":item/handheld"
		}
	}
	return DefaultNamespace + ":item/generated"
}

package analyze

import (
	"path"
	"strings"

	"packsmith/internal/document"
	"packsmith/internal/pack"
	"packsmith/internal/resource"
)

// UnusedAssets reports non-document assets that no structured document
// appears to reference. Best-effort: references are extracted from string
// leaves by shape (anything with ':' or '/'), and storage paths are compared
// against extension- and category-normalized canonical forms.
func UnusedAssets(p *pack.Package) []string {
	referenced := make(map[string]struct{})
	for _, key := range p.Store.Keys() {
		if !isDocumentPath(key) {
			continue
		}
		doc, ok := document.ReadJSON(p.Store, key)
		if !ok {
			// Undecodable documents are skipped, not fatal.
			continue
		}
		collectReferences(doc, referenced)
	}

	var unused []string
	for _, key := range p.Store.Keys() {
		if isDocumentPath(key) || key == pack.MetaPath || key == pack.IconPath {
			continue
		}
		if !isReferenced(key, referenced) {
			unused = append(unused, key)
		}
	}
	return unused
}

func isDocumentPath(key string) bool {
	return strings.HasSuffix(key, ".json") || strings.HasSuffix(key, ".mcmeta")
}

// collectReferences walks every string leaf of a decoded document.
func collectReferences(node any, referenced map[string]struct{}) {
	switch value := node.(type) {
	case map[string]any:
		for _, child := range value {
			collectReferences(child, referenced)
		}
	case []any:
		for _, child := range value {
			collectReferences(child, referenced)
		}
	case string:
		addReference(value, referenced)
	}
}

// addReference canonicalizes a candidate reference string. Strings with
// neither ':' nor '/' are not references.
func addReference(s string, referenced map[string]struct{}) {
	s = strings.TrimSpace(s)
	if s == "" || (!strings.Contains(s, ":") && !strings.Contains(s, "/")) {
		return
	}
	if strings.HasPrefix(s, "assets/") {
		for _, variant := range storageVariants(s) {
			referenced[variant] = struct{}{}
		}
		return
	}
	id := resource.Parse(s)
	referenced[id.String()] = struct{}{}
	if stripped := stripExtension(id.Path); stripped != id.Path {
		referenced[resource.ID{Namespace: id.Namespace, Path: stripped}.String()] = struct{}{}
	}
}

// isReferenced checks a storage path against the referenced set under every
// canonical variant the reference may have used.
func isReferenced(key string, referenced map[string]struct{}) bool {
	for _, variant := range storageVariants(key) {
		if _, ok := referenced[variant]; ok {
			return true
		}
	}
	return false
}

// storageVariants converts assets/<ns>/<category>/<rest> into the canonical
// "ns:..." forms a reference may use: with and without the category segment,
// with and without the file extension. Paths outside assets/ normalize to
// themselves only.
func storageVariants(key string) []string {
	parts := strings.SplitN(key, "/", 3)
	if len(parts) < 3 || parts[0] != "assets" {
		return []string{key}
	}
	ns := parts[1]
	rest := parts[2]

	variants := make([]string, 0, 4)
	add := func(p string) {
		variants = append(variants, ns+":"+p)
		if stripped := stripExtension(p); stripped != p {
			variants = append(variants, ns+":"+stripped)
		}
	}
	add(rest)
	if category, below, ok := strings.Cut(rest, "/"); ok && category != "" {
		add(below)
	}
	return variants
}

func stripExtension(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}

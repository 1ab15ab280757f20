package merge

import (
	"sort"

	"packsmith/internal/pack"
)

// Merge combines packages in priority order (lowest first) into a new package
// holding the union of all paths; the last writer wins at every path. Inputs
// are never mutated.
func Merge(packages []*pack.Package, outputName string) *pack.Package {
	out := pack.New(outputName)
	for _, p := range packages {
		if p == nil {
			continue
		}
		for _, key := range p.Store.Keys() {
			payload, _ := p.Store.Get(key)
			out.Store.Set(key, payload)
		}
	}
	return out
}

// Conflict records a path written by more than one package.
type Conflict struct {
	Path     string
	Packages []string
}

// Conflicts lists every path contributed by two or more packages, ascending
// by path, with contributors in input order.
func Conflicts(packages []*pack.Package) []Conflict {
	contributors := make(map[string][]string)
	for _, p := range packages {
		if p == nil {
			continue
		}
		for _, key := range p.Store.Keys() {
			contributors[key] = append(contributors[key], p.Name)
		}
	}

	var out []Conflict
	for path, names := range contributors {
		if len(names) > 1 {
			out = append(out, Conflict{Path: path, Packages: names})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

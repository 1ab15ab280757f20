package analyze

import (
	"path"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"packsmith/internal/pack"
)

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// DuplicateGroup lists paths holding byte-identical image content.
type DuplicateGroup struct {
	Paths []string
	Size  int64
}

type contentKey struct {
	hash uint64
	size int64
}

// Duplicates groups image assets by content hash and reports groups with two
// or more members, sorted descending by payload size. xxhash is stable and
// fast; grouping additionally keys on size so a hash collision cannot join
// unequal payloads.
func Duplicates(p *pack.Package) []DuplicateGroup {
	groups := make(map[contentKey][]string)
	for _, key := range p.Store.Keys() {
		if _, ok := imageExtensions[strings.ToLower(path.Ext(key))]; !ok {
			continue
		}
		payload, _ := p.Store.Get(key)
		ck := contentKey{hash: xxhash.Sum64(payload), size: int64(len(payload))}
		groups[ck] = append(groups[ck], key)
	}

	var out []DuplicateGroup
	for ck, paths := range groups {
		if len(paths) < 2 {
			continue
		}
		out = append(out, DuplicateGroup{Paths: paths, Size: ck.size})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		return out[i].Paths[0] < out[j].Paths[0]
	})
	return out
}

package analyze

import (
	"path"
	"sort"
	"strings"

	"packsmith/internal/pack"
)

// FileInfo pairs a stored path with its payload size.
type FileInfo struct {
	Path string
	Size int64
}

// Stats aggregates package content in a single pass.
type Stats struct {
	TotalFiles   int
	TotalSize    int64
	ByExtension  map[string]int
	ByNamespace  map[string]int
	LargestFiles []FileInfo
}

const largestFileCount = 10

// Collect computes statistics over every stored entry.
func Collect(p *pack.Package) Stats {
	stats := Stats{
		ByExtension: make(map[string]int),
		ByNamespace: make(map[string]int),
	}
	var files []FileInfo
	for _, key := range p.Store.Keys() {
		payload, _ := p.Store.Get(key)
		size := int64(len(payload))
		stats.TotalFiles++
		stats.TotalSize += size
		stats.ByExtension[extensionOf(key)]++
		stats.ByNamespace[namespaceOf(key)]++
		files = append(files, FileInfo{Path: key, Size: size})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Size != files[j].Size {
			return files[i].Size > files[j].Size
		}
		return files[i].Path < files[j].Path
	})
	if len(files) > largestFileCount {
		files = files[:largestFileCount]
	}
	stats.LargestFiles = files
	return stats
}

func extensionOf(key string) string {
	ext := strings.ToLower(path.Ext(key))
	if ext == "" {
		return "(none)"
	}
	return ext
}

func namespaceOf(key string) string {
	parts := strings.SplitN(key, "/", 3)
	if len(parts) >= 2 && parts[0] == "assets" {
		return parts[1]
	}
	return "(root)"
}

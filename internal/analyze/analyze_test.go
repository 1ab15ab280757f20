package analyze

import (
	"testing"

	"packsmith/internal/override"
	"packsmith/internal/pack"
)

func TestCollectStats(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	p.Store.Set("pack.mcmeta", []byte(`{"pack":{}}`))
	p.Store.Set("assets/minecraft/textures/item/a.png", make([]byte, 100))
	p.Store.Set("assets/minecraft/textures/item/b.png", make([]byte, 50))
	p.Store.Set("assets/mrwm/models/item/c.json", make([]byte, 10))

	stats := Collect(p)
	if stats.TotalFiles != 4 {
		t.Fatalf("TotalFiles = %d", stats.TotalFiles)
	}
	if stats.TotalSize != 100+50+10+int64(len(`{"pack":{}}`)) {
		t.Fatalf("TotalSize = %d", stats.TotalSize)
	}
	if stats.ByExtension[".png"] != 2 || stats.ByExtension[".json"] != 1 || stats.ByExtension[".mcmeta"] != 1 {
		t.Fatalf("ByExtension = %v", stats.ByExtension)
	}
	if stats.ByNamespace["minecraft"] != 2 || stats.ByNamespace["mrwm"] != 1 || stats.ByNamespace["(root)"] != 1 {
		t.Fatalf("ByNamespace = %v", stats.ByNamespace)
	}
	if len(stats.LargestFiles) != 4 || stats.LargestFiles[0].Path != "assets/minecraft/textures/item/a.png" {
		t.Fatalf("LargestFiles = %+v", stats.LargestFiles)
	}
}

func TestCollectCapsLargestFiles(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	for i := 0; i < 15; i++ {
		p.Store.Set(string(rune('a'+i))+".png", make([]byte, i+1))
	}
	stats := Collect(p)
	if len(stats.LargestFiles) != 10 {
		t.Fatalf("LargestFiles length = %d, want 10", len(stats.LargestFiles))
	}
	if stats.LargestFiles[0].Size != 15 {
		t.Fatalf("largest = %+v", stats.LargestFiles[0])
	}
}

func TestDuplicates(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	identical := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	p.Store.Set("assets/minecraft/textures/item/a.png", identical)
	p.Store.Set("assets/mrwm/textures/item/copy.png", identical)
	p.Store.Set("assets/minecraft/textures/item/unique.png", []byte{1})
	// Same bytes, non-image extension: excluded from grouping.
	p.Store.Set("assets/minecraft/notes.txt", identical)

	groups := Duplicates(p)
	if len(groups) != 1 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Size != int64(len(identical)) || len(groups[0].Paths) != 2 {
		t.Fatalf("group = %+v", groups[0])
	}
	if groups[0].Paths[0] != "assets/minecraft/textures/item/a.png" || groups[0].Paths[1] != "assets/mrwm/textures/item/copy.png" {
		t.Fatalf("paths = %v", groups[0].Paths)
	}
}

func TestDuplicatesSortedBySizeDescending(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	small := []byte{1, 2}
	large := []byte{1, 2, 3, 4, 5, 6}
	p.Store.Set("s1.png", small)
	p.Store.Set("s2.png", small)
	p.Store.Set("l1.png", large)
	p.Store.Set("l2.png", large)

	groups := Duplicates(p)
	if len(groups) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Size != 6 || groups[1].Size != 2 {
		t.Fatalf("groups not sorted by size: %+v", groups)
	}
}

func TestUnusedAssets(t *testing.T) {
	t.Parallel()
	p, err := pack.ApplySettings(pack.New("test"), pack.Settings{Format: 34, Description: "test"})
	if err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}
	p, err = override.Apply(p, override.Request{
		ItemID: "diamond_sword", VariantTag: 1, Namespace: "mrwm", Texture: []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("override.Apply: %v", err)
	}
	// An orphan texture nothing references.
	p.Store.Set("assets/mrwm/textures/item/orphan.png", []byte{9})
	// pack.png is exempt by definition.
	p.Store.Set("pack.png", []byte{1})

	unused := UnusedAssets(p)
	if len(unused) != 1 || unused[0] != "assets/mrwm/textures/item/orphan.png" {
		t.Fatalf("unused = %v", unused)
	}
}

func TestUnusedAssetsMatchesExtensionlessReferences(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	// sounds.json references a sound without extension or category.
	p.Store.Set("assets/mrwm/sounds.json", []byte(`{"chime":{"sounds":["mrwm:block/chime"]}}`))
	p.Store.Set("assets/mrwm/sounds/block/chime.ogg", []byte{1})
	p.Store.Set("assets/mrwm/sounds/block/silent.ogg", []byte{2})

	unused := UnusedAssets(p)
	if len(unused) != 1 || unused[0] != "assets/mrwm/sounds/block/silent.ogg" {
		t.Fatalf("unused = %v", unused)
	}
}

func TestUnusedAssetsSkipsBrokenDocuments(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	p.Store.Set("assets/mrwm/broken.json", []byte(`{`))
	p.Store.Set("assets/mrwm/textures/item/x.png", []byte{1})

	unused := UnusedAssets(p)
	if len(unused) != 1 || unused[0] != "assets/mrwm/textures/item/x.png" {
		t.Fatalf("unused = %v", unused)
	}
}

package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"packsmith/internal/pack"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	p := pack.New("test")
	p.Store.Set("pack.mcmeta", []byte(`{"pack":{"pack_format":34}}`))
	p.Store.Set("assets/minecraft/textures/item/a.png", []byte{0x89, 'P', 'N', 'G'})
	p.Store.Set("assets/mrwm/lang/en_us.json", []byte(`{}`))

	data, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(data, "test")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Store.Len() != p.Store.Len() {
		t.Fatalf("Len = %d, want %d", back.Store.Len(), p.Store.Len())
	}
	for _, key := range p.Store.Keys() {
		want, _ := p.Store.Get(key)
		got, ok := back.Store.Get(key)
		if !ok || !bytes.Equal(got, want) {
			t.Fatalf("%s: got %v ok=%v, want %v", key, got, ok, want)
		}
	}
}

func TestDecodeSkipsDirectoryEntries(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	if _, err := writer.Create("assets/"); err != nil {
		t.Fatalf("create dir entry: %v", err)
	}
	entry, err := writer.Create("assets/minecraft/sounds.json")
	if err != nil {
		t.Fatalf("create file entry: %v", err)
	}
	if _, err := entry.Write([]byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	p, err := Decode(buf.Bytes(), "test")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Store.Len() != 1 || !p.Store.Has("assets/minecraft/sounds.json") {
		t.Fatalf("keys = %v", p.Store.Keys())
	}
}

func TestDecodeNormalizesPaths(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	entry, err := writer.CreateHeader(&zip.FileHeader{Name: "./assets//pack.png", Method: zip.Store})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := entry.Write([]byte{1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	p, err := Decode(buf.Bytes(), "test")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !p.Store.Has("assets/pack.png") {
		t.Fatalf("keys = %v", p.Store.Keys())
	}
}

func TestLoadSave(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "my_pack.zip")

	p := pack.New("my_pack")
	p.Store.Set("pack.mcmeta", []byte(`{"pack":{"pack_format":34,"description":"x"}}`))
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Fatal("lock file left behind")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "my_pack" {
		t.Fatalf("Name = %q", loaded.Name)
	}
	if !loaded.Store.Has("pack.mcmeta") {
		t.Fatalf("keys = %v", loaded.Store.Keys())
	}
}

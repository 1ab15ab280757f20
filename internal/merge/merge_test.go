package merge

import (
	"testing"

	"packsmith/internal/pack"
)

func TestMergeLaterWins(t *testing.T) {
	t.Parallel()
	a := pack.New("A")
	a.Store.Set("assets/minecraft/textures/x.png", []byte{1, 2, 3, 4})
	b := pack.New("B")
	b.Store.Set("assets/minecraft/textures/x.png", []byte{9, 9, 9, 9, 9, 9, 9, 9})
	b.Store.Set("assets/minecraft/sounds.json", []byte(`{}`))

	out := Merge([]*pack.Package{a, b}, "out")
	if out.Name != "out" {
		t.Fatalf("Name = %q", out.Name)
	}
	payload, ok := out.Store.Get("assets/minecraft/textures/x.png")
	if !ok || len(payload) != 8 {
		t.Fatalf("x.png payload = %v ok=%v, want B's 8 bytes", payload, ok)
	}
	if !out.Store.Has("assets/minecraft/sounds.json") {
		t.Fatal("expected union to include sounds.json")
	}
	if out.Store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", out.Store.Len())
	}
}

func TestMergeSingleInputEqualsInput(t *testing.T) {
	t.Parallel()
	a := pack.New("A")
	a.Store.Set("pack.mcmeta", []byte(`{}`))
	a.Store.Set("assets/minecraft/lang/en_us.json", []byte(`{"k":"v"}`))

	out := Merge([]*pack.Package{a}, "copy")
	if out.Store.Len() != a.Store.Len() {
		t.Fatalf("Len = %d, want %d", out.Store.Len(), a.Store.Len())
	}
	for _, key := range a.Store.Keys() {
		want, _ := a.Store.Get(key)
		got, ok := out.Store.Get(key)
		if !ok || string(got) != string(want) {
			t.Fatalf("%s: got %q want %q", key, got, want)
		}
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()
	a := pack.New("A")
	a.Store.Set("a.txt", []byte("a"))
	b := pack.New("B")
	b.Store.Set("a.txt", []byte("b"))

	out := Merge([]*pack.Package{a, b}, "out")
	out.Store.Set("extra.txt", []byte("x"))

	if a.Store.Has("extra.txt") || b.Store.Has("extra.txt") {
		t.Fatal("merge output shares a store with an input")
	}
	if payload, _ := a.Store.Get("a.txt"); string(payload) != "a" {
		t.Fatal("input A mutated")
	}
}

func TestConflicts(t *testing.T) {
	t.Parallel()
	a := pack.New("A")
	a.Store.Set("shared.png", []byte("a"))
	a.Store.Set("only_a.png", []byte("a"))
	b := pack.New("B")
	b.Store.Set("shared.png", []byte("b"))
	c := pack.New("C")
	c.Store.Set("shared.png", []byte("c"))
	c.Store.Set("only_c.png", []byte("c"))

	conflicts := Conflicts([]*pack.Package{a, b, c})
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %+v", conflicts)
	}
	if conflicts[0].Path != "shared.png" {
		t.Fatalf("path = %q", conflicts[0].Path)
	}
	want := []string{"A", "B", "C"}
	if len(conflicts[0].Packages) != len(want) {
		t.Fatalf("packages = %v", conflicts[0].Packages)
	}
	for i := range want {
		if conflicts[0].Packages[i] != want[i] {
			t.Fatalf("packages = %v, want %v", conflicts[0].Packages, want)
		}
	}
}

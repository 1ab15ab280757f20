package testsupport

import (
	"testing"

	"packsmith/internal/pack"
)

// NewPack builds a named pack carrying pack.mcmeta for the given format.
func NewPack(t testing.TB, name string, format int) *pack.Package {
	t.Helper()

	p := pack.New(name)
	if err := pack.WriteMetadata(p.Store, pack.Metadata{
		Format:      format,
		Description: "test pack",
	}); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	return p
}

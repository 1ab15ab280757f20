package pack

import (
	"errors"
	"testing"
)

func TestApplySettingsWritesMetadata(t *testing.T) {
	t.Parallel()
	p := New("test")
	next, err := ApplySettings(p, Settings{Format: 34, Description: "hello"})
	if err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}

	meta, ok := ReadMetadata(next)
	if !ok {
		t.Fatal("expected metadata after ApplySettings")
	}
	if meta.Format != 34 || meta.Description != "hello" {
		t.Fatalf("metadata = %+v", meta)
	}

	// Input must stay untouched.
	if p.Store.Has(MetaPath) {
		t.Fatal("ApplySettings mutated its input")
	}
}

func TestApplySettingsRejectsNonPositiveFormat(t *testing.T) {
	t.Parallel()
	p := New("test")
	for _, format := range []int{0, -3} {
		if _, err := ApplySettings(p, Settings{Format: format}); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("format %d: err = %v, want ErrInvalidFormat", format, err)
		}
	}
}

func TestReadMetadataAbsentOrMalformed(t *testing.T) {
	t.Parallel()
	p := New("test")
	if _, ok := ReadMetadata(p); ok {
		t.Fatal("expected ok=false for absent metadata")
	}

	p.Store.Set(MetaPath, []byte(`{"pack":{"pack_format":"not a number"}}`))
	if _, ok := ReadMetadata(p); ok {
		t.Fatal("expected ok=false for non-numeric format")
	}

	p.Store.Set(MetaPath, []byte(`not json`))
	if _, ok := ReadMetadata(p); ok {
		t.Fatal("expected ok=false for unparseable document")
	}
}

func TestFormatRegistry(t *testing.T) {
	t.Parallel()
	if IsModern(45) || !IsModern(46) {
		t.Fatal("boundary misplaced")
	}
	label, ok := FormatLabel(46)
	if !ok || label != "1.21.4" {
		t.Fatalf("FormatLabel(46) = %q ok=%v", label, ok)
	}
	if _, ok := FormatLabel(7); ok {
		t.Fatal("expected unknown format to miss")
	}

	formats := KnownFormats()
	for i := 1; i < len(formats); i++ {
		if formats[i].Format <= formats[i-1].Format {
			t.Fatalf("registry not ascending at %d", i)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()
	settings := DefaultSettings()
	if settings.Format <= 0 || settings.Description == "" {
		t.Fatalf("DefaultSettings = %+v", settings)
	}
}

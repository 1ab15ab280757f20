package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"packsmith/internal/pack"
	"packsmith/internal/store"
)

// ErrLocked reports that another process holds the save lock for a path.
var ErrLocked = errors.New("pack file is locked by another process")

// Decode reads a zip byte stream into a new package. Directory entries are
// rejected (skipped), every path is normalized, and paths that normalize to
// nothing are dropped.
func Decode(data []byte, name string) (*pack.Package, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	p := pack.New(name)
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || strings.HasSuffix(entry.Name, "/") {
			continue
		}
		key := store.Normalize(entry.Name)
		if key == "" {
			continue
		}
		file, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %q: %w", entry.Name, err)
		}
		payload, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %q: %w", entry.Name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close entry %q: %w", entry.Name, closeErr)
		}
		p.Store.Set(key, payload)
	}
	return p, nil
}

// Encode serializes the package content into a zip byte stream. Entries are
// written in key order so output is deterministic, though Decode does not
// depend on it.
func Encode(p *pack.Package) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, key := range p.Store.Keys() {
		payload, _ := p.Store.Get(key)
		entry, err := writer.Create(key)
		if err != nil {
			return nil, fmt.Errorf("create entry %q: %w", key, err)
		}
		if _, err := entry.Write(payload); err != nil {
			return nil, fmt.Errorf("write entry %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads a pack file from disk. The package takes its name from the file
// name without extension.
func Load(path string) (*pack.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(data, name)
}

// Save encodes the package and writes it to path atomically, guarded by an
// advisory lock so two invocations saving the same file do not interleave.
func Save(p *pack.Package, path string) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire save lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".packsmith-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write pack file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close pack file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace pack file: %w", err)
	}
	return nil
}

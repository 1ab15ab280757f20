package testsupport

import (
	"testing"

	"packsmith/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp data directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithNamespace overrides the default namespace.
func WithNamespace(namespace string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.General.DefaultNamespace = namespace
	}
}

// WithPackFormat overrides the pack format written into new packs.
func WithPackFormat(format int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Editor.PackFormat = format
	}
}

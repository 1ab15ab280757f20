package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"packsmith/internal/archive"
	"packsmith/internal/pack"
	"packsmith/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	dataDir    string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	configPath := filepath.Join(base, "config.toml")

	content := fmt.Sprintf("[paths]\ndata_dir = %q\n", dataDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		configPath: configPath,
		dataDir:    dataDir,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writePackFile saves a minimal pack archive with the given format and
// returns its path.
func writePackFile(t *testing.T, env *cliTestEnv, name string, format int) string {
	t.Helper()
	p := testsupport.NewPack(t, name, format)
	path := filepath.Join(env.baseDir, name+".zip")
	if err := archive.Save(p, path); err != nil {
		t.Fatalf("save pack: %v", err)
	}
	return path
}

func loadPackFile(t *testing.T, path string) *pack.Package {
	t.Helper()
	p, err := archive.Load(path)
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	return p
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

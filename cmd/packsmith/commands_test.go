package main

import (
	"os"
	"path/filepath"
	"testing"

	"packsmith/internal/document"
	"packsmith/internal/pack"
)

func TestInfoCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)

	out, _, err := runCLI(t, []string{"info", packPath}, env.configPath)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	requireContains(t, out, "demo")
	requireContains(t, out, "34")
	requireContains(t, out, "legacy model overrides")
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"formats"}, "")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	requireContains(t, out, "46")
	requireContains(t, out, "1.21.4")
	requireContains(t, out, "modern item definitions")
}

func TestSettingsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)

	out, _, err := runCLI(t, []string{
		"settings", packPath,
		"--format", "46",
		"--description", "updated",
	}, env.configPath)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	requireContains(t, out, "format 46")

	p := loadPackFile(t, packPath)
	meta, ok := pack.ReadMetadata(p)
	if !ok {
		t.Fatal("expected metadata after settings")
	}
	if meta.Format != 46 || meta.Description != "updated" {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestVariantAddCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)
	outPath := filepath.Join(env.baseDir, "out.zip")

	out, _, err := runCLI(t, []string{
		"variant", "add", packPath,
		"--item", "minecraft:diamond_sword",
		"--tag", "1",
		"--namespace", "mrwm",
		"--output", outPath,
	}, env.configPath)
	if err != nil {
		t.Fatalf("variant add: %v", err)
	}
	requireContains(t, out, "Added variant 1")

	p := loadPackFile(t, outPath)
	doc, ok := document.ReadJSON(p.Store, "assets/minecraft/models/item/diamond_sword.json")
	if !ok {
		t.Fatal("expected item model document")
	}
	overrides, _ := doc["overrides"].([]any)
	if len(overrides) != 1 {
		t.Fatalf("overrides = %v", overrides)
	}
	if !p.Store.Has("assets/mrwm/models/item/diamond_sword_cmd_1.json") {
		t.Fatal("expected generated model document")
	}

	// Input file untouched when --output is used.
	original := loadPackFile(t, packPath)
	if original.Store.Has("assets/minecraft/models/item/diamond_sword.json") {
		t.Fatal("input pack should be unchanged")
	}
}

func TestConvertCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)

	out, _, err := runCLI(t, []string{"convert", packPath, "--to", "15"}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "pack_format 34 -> 15")

	p := loadPackFile(t, packPath)
	meta, _ := pack.ReadMetadata(p)
	if meta.Format != 15 {
		t.Fatalf("Format = %d, want 15", meta.Format)
	}
}

func TestConvertCommandSameFormatWritesNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)
	before, err := os.ReadFile(packPath)
	if err != nil {
		t.Fatalf("read pack: %v", err)
	}

	out, _, err := runCLI(t, []string{"convert", packPath, "--to", "34"}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Nothing to convert")

	after, err := os.ReadFile(packPath)
	if err != nil {
		t.Fatalf("read pack: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("pack file should be untouched")
	}
}

func TestMergeCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	lower := writePackFile(t, env, "lower", 34)
	higher := writePackFile(t, env, "higher", 46)
	outPath := filepath.Join(env.baseDir, "merged.zip")

	out, _, err := runCLI(t, []string{
		"merge", lower, higher,
		"--output", outPath,
		"--show-conflicts",
	}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "pack.mcmeta: lower, higher")
	requireContains(t, out, "Merged 2 packs")

	p := loadPackFile(t, outPath)
	meta, _ := pack.ReadMetadata(p)
	if meta.Format != 46 {
		t.Fatalf("Format = %d, want the later pack to win", meta.Format)
	}
}

func TestGlyphAddAllocatesCodepoint(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)

	out, _, err := runCLI(t, []string{
		"glyph", "add", packPath,
		"--file", "mrwm:font/coin.png",
		"--namespace", "mrwm",
	}, env.configPath)
	if err != nil {
		t.Fatalf("glyph add: %v", err)
	}
	requireContains(t, out, "U+E800")

	listOut, _, err := runCLI(t, []string{
		"glyph", "list", packPath,
		"--namespace", "mrwm",
	}, env.configPath)
	if err != nil {
		t.Fatalf("glyph list: %v", err)
	}
	requireContains(t, listOut, "U+E800")
	requireContains(t, listOut, "mrwm:font/coin.png")
}

func TestHistoryRecordsEdits(t *testing.T) {
	env := setupCLITestEnv(t)
	packPath := writePackFile(t, env, "demo", 34)

	if _, _, err := runCLI(t, []string{
		"variant", "add", packPath,
		"--item", "minecraft:stick",
		"--tag", "3",
	}, env.configPath); err != nil {
		t.Fatalf("variant add: %v", err)
	}

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "variant add")
	requireContains(t, out, "demo")

	clearOut, _, err := runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, clearOut, "Removed 1 history rows")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "default_namespace")
	requireContains(t, out, "minecraft")
}

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/buildstamp/internal/testutil"
)

func TestLoad_emptyDirectory(t *testing.T) {
	ctx, err := Load(t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ctx.Config == nil || ctx.Config.Version != 1 {
		t.Error("expected default config")
	}
	if ctx.Manifest != nil {
		t.Error("manifest should be nil when absent")
	}
	if ctx.Stamp != nil {
		t.Error("stamp should be nil when absent")
	}
}

func TestLoad_withManifest(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, "widget", "1.4.0")

	ctx, err := Load(dir, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ctx.Manifest == nil {
		t.Fatal("manifest should be loaded")
	}
	if ctx.Manifest.Project.Name != "widget" {
		t.Errorf("name = %q", ctx.Manifest.Project.Name)
	}
}

func TestLoad_brokenManifestIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	if err := os.WriteFile(path, []byte("[project\nbroken"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	ctx, err := Load(dir, Options{})
	if err != nil {
		t.Fatalf("broken manifest must not fail the load: %v", err)
	}
	if ctx.Manifest != nil {
		t.Error("manifest should be nil when unparsable")
	}
	if ctx.ManifestErr == nil {
		t.Error("parse error should be retained for diagnostics")
	}
}

func TestLoad_configFromDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte("version: 1\nmanifest: custom.toml\n")
	if err := os.WriteFile(filepath.Join(dir, ".buildstamp.yaml"), cfg, 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	ctx, err := Load(dir, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if filepath.Base(ctx.ManifestPath) != "custom.toml" {
		t.Errorf("manifest path = %q, want custom.toml", ctx.ManifestPath)
	}
}

func TestLoad_explicitConfigMustParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bs.yaml")
	if err := os.WriteFile(path, []byte("version: 9\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	if _, err := Load(dir, Options{ConfigPath: path}); err == nil {
		t.Fatal("explicitly named broken config must fail the load")
	}
}

func TestLoad_brokenDefaultConfigFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".buildstamp.yaml"), []byte("version: [\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	if _, err := Load(dir, Options{}); err == nil {
		t.Fatal("broken config in the default location must fail the load")
	}
}

func TestLoad_manifestPathFlagWins(t *testing.T) {
	dir := t.TempDir()
	alt := filepath.Join(dir, "alt.toml")
	if err := os.WriteFile(alt, []byte("[project]\nname = \"alt\"\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	ctx, err := Load(dir, Options{ManifestPath: "alt.toml"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ctx.Manifest == nil || ctx.Manifest.Project.Name != "alt" {
		t.Error("explicit manifest path should take priority")
	}
}

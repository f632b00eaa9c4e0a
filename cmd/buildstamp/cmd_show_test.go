package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fbkclanna/buildstamp/internal/resolve"
)

func TestRunShow_report(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "--dir", dir, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.HasPrefix(out, "widget 1.4.0\n") {
		t.Errorf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "Git Branch: main") {
		t.Errorf("missing git branch, got:\n%s", out)
	}
}

func TestRunShow_short(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "--dir", dir, "show", "--short")
	if err != nil {
		t.Fatalf("show --short failed: %v", err)
	}
	if !strings.HasPrefix(out, "widget version 1.4.0, build ") {
		t.Errorf("short summary = %q", out)
	}
}

func TestRunShow_json(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "--dir", dir, "show", "--json")
	if err != nil {
		t.Fatalf("show --json failed: %v", err)
	}

	var results []resolve.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	byField := make(map[string]resolve.Result, len(results))
	for _, r := range results {
		byField[r.Field] = r
	}
	if got := byField["version"]; got.Value != "1.4.0" || got.Source != "manifest" {
		t.Errorf("version = %+v", got)
	}
}

func TestRunShow_emptyDirStillReports(t *testing.T) {
	out, err := execute(t, "--dir", t.TempDir(), "show", "--short")
	if err != nil {
		t.Fatalf("show must not fail without sources: %v", err)
	}
	if !strings.Contains(out, "version 0.0.0") {
		t.Errorf("expected version default, got %q", out)
	}
}

package main

import (
	"strings"
	"testing"
)

func TestRunDoctor_healthyProject(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "--dir", dir, "doctor")
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All checks passed.") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "widget 1.4.0") {
		t.Errorf("manifest check missing, got:\n%s", out)
	}
}

func TestRunDoctor_brokenManifestFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "project.toml", "[project\nbroken =")

	out, err := execute(t, "--dir", dir, "doctor")
	if err == nil {
		t.Fatalf("expected doctor to fail, got:\n%s", out)
	}
	if !strings.Contains(out, "Some checks failed.") {
		t.Errorf("output = %q", out)
	}
}

func TestRunDoctor_bareDirectorySkips(t *testing.T) {
	out, err := execute(t, "--dir", t.TempDir(), "doctor")
	if err != nil {
		t.Fatalf("doctor should pass with everything absent: %v", err)
	}
	if !strings.Contains(out, "skipped") {
		t.Errorf("expected skip lines, got:\n%s", out)
	}
}

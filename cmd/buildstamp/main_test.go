package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/buildstamp/internal/testutil"
)

// setupProject creates a git repo with a project.toml manifest and returns
// its path.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := testutil.CreateRepo(t)
	testutil.WriteManifest(t, dir, "widget", "1.4.0")
	return dir
}

// writeFile writes content to name inside dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

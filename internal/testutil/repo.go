package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateRepo creates a git repository with an initial commit in a temp
// directory and returns its path.
func CreateRepo(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "work")

	run(t, ".", "git", "init", "-b", "main", dir)
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", "initial commit")

	return dir
}

// CreateDirtyRepo creates a repo with an uncommitted change in its tree.
func CreateDirtyRepo(t *testing.T) string {
	t.Helper()
	dir := CreateRepo(t)

	f := filepath.Join(dir, "scratch.txt")
	if err := os.WriteFile(f, []byte("uncommitted\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return dir
}

// DetachHead checks out the repo's HEAD commit directly, detaching it.
func DetachHead(t *testing.T, dir string) {
	t.Helper()
	run(t, dir, "git", "checkout", "--detach", "HEAD")
}

// WriteManifest writes a project.toml with the given name and version into
// dir and returns its path.
func WriteManifest(t *testing.T, dir, name, version string) string {
	t.Helper()
	path := filepath.Join(dir, "project.toml")
	content := "[project]\nname = \"" + name + "\"\nversion = \"" + version + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}

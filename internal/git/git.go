package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tree status values reported by Status.
const (
	StatusClean = "clean"
	StatusDirty = "dirty"
)

// CurrentBranch returns the current branch name, or empty string if detached.
func CurrentBranch(ctx context.Context, repoDir string) (string, error) {
	out, err := output(ctx, repoDir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch == "HEAD" {
		// Detached HEAD: rev-parse --abbrev-ref prints the literal "HEAD".
		return "", nil
	}
	return branch, nil
}

// HeadCommit returns the short SHA of HEAD.
func HeadCommit(ctx context.Context, repoDir string) (string, error) {
	out, err := output(ctx, repoDir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HeadCommitFull returns the full SHA of HEAD.
func HeadCommitFull(ctx context.Context, repoDir string) (string, error) {
	out, err := output(ctx, repoDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Status reports the working-tree state as "clean" or "dirty".
func Status(ctx context.Context, repoDir string) (string, error) {
	out, err := output(ctx, repoDir, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) != "" {
		return StatusDirty, nil
	}
	return StatusClean, nil
}

// Describe returns `git describe --always --dirty` output for HEAD.
func Describe(ctx context.Context, repoDir string) (string, error) {
	out, err := output(ctx, repoDir, "describe", "--always", "--dirty")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Version returns the `git version` banner of the installed git binary.
func Version(ctx context.Context) (string, error) {
	out, err := output(ctx, ".", "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo returns true if the directory is inside a git repository.
func IsRepo(repoDir string) bool {
	info, err := os.Stat(filepath.Join(repoDir, ".git"))
	if err == nil && info.IsDir() {
		return true
	}
	// Worktrees and submodules use a .git file instead of a directory.
	return err == nil && info.Mode().IsRegular()
}

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// output executes a git command in the given directory and returns its
// stdout. The context bounds the subprocess; expiry kills it.
func output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

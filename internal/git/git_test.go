package git

import (
	"context"
	"testing"
	"time"

	"github.com/fbkclanna/buildstamp/internal/testutil"
)

func TestCurrentBranch(t *testing.T) {
	dir := testutil.CreateRepo(t)

	branch, err := CurrentBranch(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if branch != "main" {
		t.Errorf("branch = %q, want main", branch)
	}
}

func TestCurrentBranch_detachedHead(t *testing.T) {
	dir := testutil.CreateRepo(t)
	testutil.DetachHead(t, dir)

	branch, err := CurrentBranch(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if branch != "" {
		t.Errorf("detached HEAD should yield empty branch, got %q", branch)
	}
}

func TestHeadCommit(t *testing.T) {
	dir := testutil.CreateRepo(t)

	sha, err := HeadCommit(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(sha) < 7 {
		t.Errorf("short sha too short: %q", sha)
	}

	full, err := HeadCommitFull(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != 40 {
		t.Errorf("full sha length = %d, want 40", len(full))
	}
}

func TestStatus(t *testing.T) {
	dir := testutil.CreateRepo(t)

	s, err := Status(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if s != StatusClean {
		t.Errorf("fresh repo status = %q, want clean", s)
	}

	dirty := testutil.CreateDirtyRepo(t)
	s, err = Status(context.Background(), dirty)
	if err != nil {
		t.Fatal(err)
	}
	if s != StatusDirty {
		t.Errorf("modified repo status = %q, want dirty", s)
	}
}

func TestDescribe(t *testing.T) {
	dir := testutil.CreateRepo(t)

	desc, err := Describe(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if desc == "" {
		t.Error("expected non-empty describe output")
	}
}

func TestIsRepo(t *testing.T) {
	dir := testutil.CreateRepo(t)
	if !IsRepo(dir) {
		t.Error("expected IsRepo for a git repo")
	}
	if IsRepo(t.TempDir()) {
		t.Error("expected !IsRepo for a plain directory")
	}
}

func TestOutput_nonRepoFails(t *testing.T) {
	if _, err := HeadCommit(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error outside a repository")
	}
}

func TestOutput_expiredContextFails(t *testing.T) {
	dir := testutil.CreateRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	if _, err := HeadCommit(ctx, dir); err == nil {
		t.Error("expected error for expired context")
	}
}

func TestVersion(t *testing.T) {
	v, err := Version(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if v == "" {
		t.Error("expected non-empty git version")
	}
}

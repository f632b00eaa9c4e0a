package main

import (
	"fmt"
	"os/exec"

	"github.com/fbkclanna/buildstamp/internal/git"
	"github.com/fbkclanna/buildstamp/internal/ui"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the metadata sources for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	pc, _, err := loadProject(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	checks := ui.NewChecks(out)

	// Git availability. A missing git only degrades the report, but it is
	// the most common reason for "unknown" branch/commit values.
	if gitPath, lookErr := exec.LookPath("git"); lookErr != nil {
		checks.Fail("git", "git is not on PATH; branch, commit, and status fall back to defaults")
	} else {
		checks.OK("git", "found at "+gitPath)
		if v, verr := git.Version(cmd.Context()); verr == nil {
			checks.OK("git version", v)
		} else {
			checks.Fail("git version", verr.Error())
		}
	}

	if git.IsRepo(pc.Dir) {
		checks.OK("repository", pc.Dir+" is a git repository")
	} else {
		checks.Skip("repository", "not a git repository; git sources will not resolve")
	}

	switch {
	case pc.ManifestErr != nil:
		checks.Fail("manifest", fmt.Sprintf("%s: %v", pc.ManifestPath, pc.ManifestErr))
	case pc.Manifest == nil:
		checks.Skip("manifest", pc.ManifestPath+" not found")
	default:
		checks.OK("manifest", fmt.Sprintf("%s %s", pc.Manifest.Project.Name, pc.Manifest.Project.Version))
	}

	switch {
	case pc.StampErr != nil:
		checks.Fail("stamp file", fmt.Sprintf("%s: %v", pc.StampPath, pc.StampErr))
	case pc.Stamp == nil:
		checks.Skip("stamp file", pc.StampPath+" not found")
	default:
		checks.OK("stamp file", "generated "+pc.Stamp.GeneratedAt)
	}

	if len(pc.Config.Fields) > 0 {
		checks.OK("config", fmt.Sprintf("%d field override(s)", len(pc.Config.Fields)))
	} else {
		checks.OK("config", "built-in defaults")
	}

	if checks.Failed() == 0 {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

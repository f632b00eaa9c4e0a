package main

import (
	"fmt"
	"time"

	"github.com/fbkclanna/buildstamp/internal/report"
	"github.com/fbkclanna/buildstamp/internal/stamp"
	"github.com/spf13/cobra"
)

func newStampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Resolve all fields and freeze them into buildstamp.lock.yaml",
		Long: `Resolve all fields against the current source tree and write them to a
stamp file. A binary shipped with the stamp file reports the frozen values
even after the source tree and its git history are gone.`,
		RunE: runStamp,
	}
	cmd.Flags().String("output", "", "Stamp file path (default buildstamp.lock.yaml in the project root)")
	return cmd
}

func runStamp(cmd *cobra.Command, _ []string) error {
	pc, timeout, err := loadProject(cmd)
	if err != nil {
		return err
	}

	// Ignore a pre-existing stamp so re-stamping reads live sources.
	pc.Stamp = nil

	r := report.Collect(cmd.Context(), pc, report.Options{Timeout: timeout})

	now := time.Now().UTC()
	fields := make(map[string]string, len(r.Results))
	for _, res := range r.Results {
		fields[res.Field] = res.Value
	}
	// Stamping happens at build time, so the stamp moment is the build
	// time and the artifact is a release.
	fields[report.FieldBuildTime] = now.Format(report.BuildTimeLayout)
	fields[report.FieldBuildMode] = "release"

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = pc.StampPath
	}

	f := &stamp.File{
		Version:     1,
		GeneratedAt: now.Format(time.RFC3339),
		ToolVersion: version,
		Fields:      fields,
	}
	if err := stamp.Save(path, f); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stamped %d fields to %s\n", len(fields), path)
	return err
}

package main

import (
	"fmt"
	"strings"

	"github.com/fbkclanna/buildstamp/internal/report"
	"github.com/spf13/cobra"
)

func newLdflagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ldflags",
		Short: "Print Go linker flags that embed the resolved metadata",
		Long: `Print a -X flag string suitable for go build -ldflags, embedding the
resolved version, commit, and build time into the named package's
"version", "commit", and "date" variables.`,
		RunE: runLdflags,
	}
	cmd.Flags().String("pkg", "main", "Import path of the package holding the variables")
	return cmd
}

func runLdflags(cmd *cobra.Command, _ []string) error {
	pc, timeout, err := loadProject(cmd)
	if err != nil {
		return err
	}
	pkg, _ := cmd.Flags().GetString("pkg")

	r := report.Collect(cmd.Context(), pc, report.Options{
		Timeout: timeout,
		Fields:  []string{report.FieldVersion, report.FieldGitCommit, report.FieldBuildTime},
	})

	flags := []string{
		fmt.Sprintf("-X '%s.version=%s'", pkg, r.Value(report.FieldVersion)),
		fmt.Sprintf("-X '%s.commit=%s'", pkg, r.Value(report.FieldGitCommit)),
		fmt.Sprintf("-X '%s.date=%s'", pkg, r.Value(report.FieldBuildTime)),
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(flags, " "))
	return err
}

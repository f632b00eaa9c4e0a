package main

import (
	"encoding/json"
	"fmt"

	"github.com/fbkclanna/buildstamp/internal/report"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the full metadata report",
		RunE:  runShow,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("short", false, "One-line summary")
	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	pc, timeout, err := loadProject(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	short, _ := cmd.Flags().GetBool("short")

	r := report.Collect(cmd.Context(), pc, report.Options{Timeout: timeout})
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Results)
	}
	if short {
		_, err := fmt.Fprintln(out, r.Short())
		return err
	}
	return r.Render(out)
}

package main

import (
	"encoding/json"

	"github.com/fbkclanna/buildstamp/internal/report"
	"github.com/fbkclanna/buildstamp/internal/ui"
	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List every field with its resolved value and source",
		RunE:  runFields,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runFields(cmd *cobra.Command, _ []string) error {
	pc, timeout, err := loadProject(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	r := report.Collect(cmd.Context(), pc, report.Options{Timeout: timeout})
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Results)
	}

	tbl := ui.NewTable(out, "FIELD", "VALUE", "SOURCE")
	for _, res := range r.Results {
		tbl.Row(res.Field, res.Value, res.Source)
	}
	return tbl.Flush()
}

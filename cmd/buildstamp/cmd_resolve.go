package main

import (
	"fmt"

	"github.com/fbkclanna/buildstamp/internal/report"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <field>",
		Short: "Resolve a single metadata field",
		Args:  cobra.ExactArgs(1),
		RunE:  runResolve,
	}
	cmd.Flags().String("default", "", "Fallback value when every source fails")
	cmd.Flags().Bool("with-source", false, "Print the winning source after the value")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	pc, timeout, err := loadProject(cmd)
	if err != nil {
		return err
	}

	field := args[0]
	if _, configured := pc.Config.FieldConfig(field); !configured && !report.IsKnownField(field) {
		return fmt.Errorf("unknown field %q (define it in %s or use a built-in field)", field, pc.ConfigPath)
	}

	def, _ := cmd.Flags().GetString("default")
	withSource, _ := cmd.Flags().GetBool("with-source")

	res := report.ResolveField(cmd.Context(), pc, field, def, timeout)

	out := cmd.OutOrStdout()
	if withSource {
		_, err = fmt.Fprintf(out, "%s\t%s\n", res.Value, res.Source)
		return err
	}
	_, err = fmt.Fprintln(out, res.Value)
	return err
}

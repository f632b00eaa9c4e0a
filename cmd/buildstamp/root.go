package main

import (
	"time"

	"github.com/fbkclanna/buildstamp/internal/project"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "buildstamp",
		Short:   "Resolve and report project build metadata",
		Version: version,
	}

	cmd.PersistentFlags().String("dir", ".", "Project root directory")
	cmd.PersistentFlags().String("config", "", "Path to the .buildstamp.yaml config")
	cmd.PersistentFlags().String("manifest", "", "Path to the project.toml manifest")
	cmd.PersistentFlags().Duration("timeout", 0, "Per-command timeout (default 5s)")

	cmd.AddCommand(
		newShowCmd(),
		newResolveCmd(),
		newFieldsCmd(),
		newStampCmd(),
		newLdflagsCmd(),
		newInitCmd(),
		newDoctorCmd(),
	)

	return cmd
}

// loadProject builds the project context from the persistent flags.
func loadProject(cmd *cobra.Command) (*project.Context, time.Duration, error) {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	pc, err := project.Load(dir, project.Options{
		ConfigPath:   configPath,
		ManifestPath: manifestPath,
	})
	if err != nil {
		return nil, 0, err
	}
	return pc, timeout, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/buildstamp/internal/config"
	"github.com/fbkclanna/buildstamp/internal/manifest"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project manifest and buildstamp config",
		RunE:  runInit,
	}
	cmd.Flags().String("name", "", "Project name (prompts when omitted)")
	cmd.Flags().String("project-version", "", "Initial project version")
	cmd.Flags().Bool("force", false, "Overwrite existing files")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	name, _ := cmd.Flags().GetString("name")
	projVersion, _ := cmd.Flags().GetString("project-version")
	force, _ := cmd.Flags().GetBool("force")

	manifestPath := filepath.Join(dir, manifest.DefaultFile)
	configPath := filepath.Join(dir, config.DefaultFile)

	if !force {
		for _, p := range []string{manifestPath, configPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			}
		}
	}

	if name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no TTY for interactive setup; pass --name")
		}
		var err error
		name, err = promptInput("Project name", filepath.Base(absOrSelf(dir)), validateProjectName)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		projVersion, err = promptInput("Initial version", "0.1.0", nil)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		ok, err := promptConfirm(fmt.Sprintf("Write %s and %s?", manifest.DefaultFile, config.DefaultFile))
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		if !ok {
			return fmt.Errorf("user aborted")
		}
	}
	if err := validateProjectName(name); err != nil {
		return err
	}
	if projVersion == "" {
		projVersion = "0.1.0"
	}

	if err := writeManifest(manifestPath, name, projVersion); err != nil {
		return err
	}
	if err := writeConfig(configPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s and %s\n", manifestPath, configPath)
	return nil
}

func validateProjectName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.ContainsAny(s, " \t\"'") {
		return fmt.Errorf("project name must not contain spaces or quotes")
	}
	return nil
}

func writeManifest(path, name, version string) error {
	content := fmt.Sprintf("[project]\nname = %q\nversion = %q\n", name, version)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // manifest needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func writeConfig(path string) error {
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("building config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func absOrSelf(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

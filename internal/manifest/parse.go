package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads and validates a project.toml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates project.toml content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest TOML: %w", err)
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func validate(m *Manifest) error {
	if m.Project.Name == "" {
		return fmt.Errorf("manifest: project.name is required")
	}
	if strings.TrimSpace(m.Project.Name) != m.Project.Name {
		return fmt.Errorf("manifest: project.name must not have surrounding whitespace: %q", m.Project.Name)
	}
	if m.Project.Version != "" && strings.TrimSpace(m.Project.Version) == "" {
		return fmt.Errorf("manifest: project.version must not be blank")
	}
	return nil
}

package stamp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the stamp file name written next to the manifest.
const DefaultFile = "buildstamp.lock.yaml"

// File represents buildstamp.lock.yaml.
type File struct {
	Version     int               `yaml:"version"`
	GeneratedAt string            `yaml:"generated_at"`
	ToolVersion string            `yaml:"tool_version"`
	Fields      map[string]string `yaml:"fields"`
}

// Field returns the stamped value for a field name. Blank or missing
// values report false.
func (f *File) Field(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.Fields[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Load reads a buildstamp.lock.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the stamp file path
	if err != nil {
		return nil, fmt.Errorf("reading stamp file: %w", err)
	}
	return Parse(data)
}

// Parse parses buildstamp.lock.yaml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing stamp YAML: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported stamp file version: %d (expected 1)", f.Version)
	}
	return &f, nil
}

// Save writes the stamp file to disk.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling stamp file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // stamp file needs to be readable
		return fmt.Errorf("writing stamp file: %w", err)
	}
	return nil
}

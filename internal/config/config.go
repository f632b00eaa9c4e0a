// Package config handles parsing of .buildstamp.yaml files. The config
// file controls, per field, which sources are consulted and in what order;
// the resolver itself never decides ordering.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked for in a project root.
const DefaultFile = ".buildstamp.yaml"

// Known source names usable in a field's fallback chain.
var knownSources = map[string]bool{
	"stamp":    true,
	"manifest": true,
	"module":   true,
	"git":      true,
	"env":      true,
	"runtime":  true,
	"command":  true,
}

// Config represents a .buildstamp.yaml file.
type Config struct {
	Version  int     `yaml:"version"`
	Manifest string  `yaml:"manifest,omitempty"`
	Stamp    string  `yaml:"stamp,omitempty"`
	Timeout  string  `yaml:"timeout,omitempty"`
	Fields   []Field `yaml:"fields,omitempty"`
}

// CommandTimeout returns the configured per-command timeout, or zero when
// none is set. The string is validated at parse time.
func (c *Config) CommandTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Field overrides the fallback chain for a single field, or defines a new
// field entirely.
type Field struct {
	Name    string   `yaml:"name"`
	Sources []string `yaml:"sources"`
	Env     string   `yaml:"env,omitempty"`
	Command []string `yaml:"command,omitempty"`
	Default string   `yaml:"default,omitempty"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{Version: 1}
}

// FieldConfig returns the override for a field name, if any.
func (c *Config) FieldConfig(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Load reads and validates a .buildstamp.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path comes from a flag
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates .buildstamp.yaml content.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *Config) error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("config: invalid timeout %q: %w", c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("config: timeout must not be negative")
		}
	}

	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("config: fields[%d].name is required", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("config: duplicate field %q", f.Name)
		}
		seen[f.Name] = true

		if len(f.Sources) == 0 {
			return fmt.Errorf("config: field %q needs at least one source", f.Name)
		}
		for _, s := range f.Sources {
			if !knownSources[s] {
				return fmt.Errorf("config: field %q: unknown source %q", f.Name, s)
			}
			if s == "command" && len(f.Command) == 0 {
				return fmt.Errorf("config: field %q lists the command source but has no command", f.Name)
			}
		}
	}
	return nil
}

package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written by Default and Init.
const CurrentVersion = "1.0.0"

// DefaultProfile is the profile every CLI module ships.
const DefaultProfile = "latest"

// DefaultCommandTree is the payload file name inside the workspace.
const DefaultCommandTree = "commandtree.json"

var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Config represents <workspace>/config.yaml.
type Config struct {
	Version     string   `yaml:"version"`
	Module      string   `yaml:"module,omitempty"`
	Profiles    []string `yaml:"profiles"`
	CommandTree string   `yaml:"command_tree,omitempty"`
}

// Parse parses config.yaml bytes into a Config. Missing fields take their
// defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Profiles) == 0 {
		cfg.Profiles = []string{DefaultProfile}
	}
	if cfg.CommandTree == "" {
		cfg.CommandTree = DefaultCommandTree
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Default returns a config for module with the given profiles, or the
// default profile when none are given.
func Default(module string, profiles ...string) Config {
	if len(profiles) == 0 {
		profiles = []string{DefaultProfile}
	}
	return Config{
		Version:     CurrentVersion,
		Module:      module,
		Profiles:    profiles,
		CommandTree: DefaultCommandTree,
	}
}

// Validate checks profile names and uniqueness.
func (c Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("config: at least one profile is required")
	}
	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if !ValidProfileName(p) {
			return fmt.Errorf("config: invalid profile name %q", p)
		}
		if seen[p] {
			return fmt.Errorf("config: duplicate profile %q", p)
		}
		seen[p] = true
	}
	return nil
}

// HasProfile reports whether name is one of the configured profiles.
func (c Config) HasProfile(name string) bool {
	for _, p := range c.Profiles {
		if p == name {
			return true
		}
	}
	return false
}

// CommandTreePath resolves the payload location against the workspace.
func (c Config) CommandTreePath(workspace string) string {
	if filepath.IsAbs(c.CommandTree) {
		return c.CommandTree
	}
	return filepath.Join(workspace, c.CommandTree)
}

// ValidProfileName reports whether name can be used as a profile file name.
func ValidProfileName(name string) bool {
	return profileNamePattern.MatchString(name)
}

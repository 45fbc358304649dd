package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ruminaider/aaz-profiles/internal/paths"
	"go.yaml.in/yaml/v3"
)

// Profile is the module view of a CLI profile: a sparse tree holding only the
// selected command groups and commands, keyed by leaf name at every level.
// This is the document the workspace backend stores on save.
type Profile struct {
	Name          string                   `yaml:"name" json:"name"`
	CommandGroups map[string]*CommandGroup `yaml:"commandGroups" json:"commandGroups"`
}

// CommandGroup is a selected command group in the module view.
type CommandGroup struct {
	Names         []string                 `yaml:"names" json:"names"`
	CommandGroups map[string]*CommandGroup `yaml:"commandGroups,omitempty" json:"commandGroups,omitempty"`
	Commands      map[string]*Command      `yaml:"commands,omitempty" json:"commands,omitempty"`
}

// Command is a selected command pinned to a version.
type Command struct {
	Names      []string `yaml:"names" json:"names"`
	Version    string   `yaml:"version" json:"version"`
	Registered bool     `yaml:"registered" json:"registered"`
}

// ParseProfile parses a module view document. YAML and JSON are both accepted
// since the backend hands out JSON and the workspace stores YAML.
func ParseProfile(data []byte) (*Profile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	// Empty document is a valid empty profile.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Profile{CommandGroups: map[string]*CommandGroup{}}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing profile: expected mapping at top level")
	}

	var p Profile
	if err := root.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if p.CommandGroups == nil {
		p.CommandGroups = map[string]*CommandGroup{}
	}
	return &p, nil
}

// MarshalProfile serializes a Profile to YAML bytes.
func MarshalProfile(p *Profile) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return data, nil
}

// MarshalProfileJSON serializes a Profile to indented JSON, the shape the
// workspace backend accepts on save.
func MarshalProfileJSON(p *Profile) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return append(data, '\n'), nil
}

// ListProfiles returns sorted profile names by scanning profiles/*.yaml
// in the workspace. Returns empty slice (not error) if profiles/ doesn't exist.
func ListProfiles(workspace string) ([]string, error) {
	entries, err := os.ReadDir(paths.ProfilesDir(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}

	sort.Strings(names)
	return names, nil
}

// ProfilePath returns the location of profiles/<name>.yaml.
func ProfilePath(workspace, name string) string {
	return filepath.Join(paths.ProfilesDir(workspace), name+".yaml")
}

// ReadProfile reads and parses profiles/<name>.yaml from the workspace.
// A missing file wraps os.ErrNotExist.
func ReadProfile(workspace, name string) (*Profile, error) {
	data, err := os.ReadFile(ProfilePath(workspace, name))
	if err != nil {
		return nil, fmt.Errorf("reading profile %q: %w", name, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// WriteProfile writes p to profiles/<p.Name>.yaml.
func WriteProfile(workspace string, p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("writing profile: name is required")
	}
	data, err := MarshalProfile(p)
	if err != nil {
		return err
	}
	path := ProfilePath(workspace, p.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating profiles directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile %q: %w", p.Name, err)
	}
	return nil
}

// DeleteProfile removes profiles/<name>.yaml. No error if it doesn't exist.
func DeleteProfile(workspace, name string) error {
	err := os.Remove(ProfilePath(workspace, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	return nil
}

// ReadActiveProfile reads the active-profile file from the workspace.
// Returns "" and nil error if the file doesn't exist.
func ReadActiveProfile(workspace string) (string, error) {
	path := filepath.Join(workspace, "active-profile")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading active profile: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteActiveProfile writes the profile name to the active-profile file.
func WriteActiveProfile(workspace, name string) error {
	path := filepath.Join(workspace, "active-profile")
	if err := os.WriteFile(path, []byte(name+"\n"), 0644); err != nil {
		return fmt.Errorf("writing active profile: %w", err)
	}
	return nil
}

// Commands flattens the view into a map keyed by the space-joined command
// names ("network vnet list").
func Commands(p *Profile) map[string]*Command {
	out := make(map[string]*Command)
	if p == nil {
		return out
	}
	var walk func(groups map[string]*CommandGroup)
	walk = func(groups map[string]*CommandGroup) {
		for _, g := range groups {
			if g == nil {
				continue
			}
			for _, c := range g.Commands {
				if c == nil {
					continue
				}
				out[strings.Join(c.Names, " ")] = c
			}
			walk(g.CommandGroups)
		}
	}
	walk(p.CommandGroups)
	return out
}

// ProfileSummary returns a human-readable summary of a view.
// Format: "N command(s), N registered, N top-level group(s)".
// Returns "no commands selected" for an empty view.
func ProfileSummary(p *Profile) string {
	cmds := Commands(p)
	if len(cmds) == 0 {
		return "no commands selected"
	}

	registered := 0
	for _, c := range cmds {
		if c.Registered {
			registered++
		}
	}

	return fmt.Sprintf("%d %s, %d registered, %d top-level %s",
		len(cmds), pluralize("command", len(cmds)),
		registered,
		len(p.CommandGroups), pluralize("group", len(p.CommandGroups)))
}

// pluralize returns the singular or plural form depending on count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// Package cmdtree builds and edits the profile command tree: the full set of
// command groups and commands available to a CLI module, annotated with which
// commands a profile selects and at which version.
//
// Trees are immutable values. Every edit returns a new *Tree that shares all
// untouched subtrees with its input by pointer, so callers can detect change
// with a pointer comparison.
package cmdtree

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Separator joins name segments into a node ID.
const Separator = "/"

// Tree is the command tree of one profile.
type Tree struct {
	Name          string
	CommandGroups []*CommandGroup
}

// CommandGroup is a namespace node. CommandGroups and Commands are nil when the
// source payload did not declare them.
type CommandGroup struct {
	ID    string
	Names []string
	Help  string

	CommandGroups []*CommandGroup
	Commands      []*Command

	TotalCommands    int
	SelectedCommands int
}

// Command is a leaf node. SelectedVersion is empty while the command is not
// selected.
type Command struct {
	ID    string
	Names []string
	Help  string

	Versions []Version

	SelectedVersion string
	Registered      *bool
}

// Version describes one published version of a command.
type Version struct {
	Name  string
	Stage string
}

// LeafName returns the last name segment, the key used in module views.
func (g *CommandGroup) LeafName() string {
	return leaf(g.Names)
}

// FullySelected reports whether every command below g is selected.
func (g *CommandGroup) FullySelected() bool {
	return g.TotalCommands > 0 && g.SelectedCommands == g.TotalCommands
}

// Indeterminate reports whether some, but not all, commands below g are selected.
func (g *CommandGroup) Indeterminate() bool {
	return g.SelectedCommands > 0 && g.SelectedCommands < g.TotalCommands
}

// LeafName returns the last name segment, the key used in module views.
func (c *Command) LeafName() string {
	return leaf(c.Names)
}

// Selected reports whether the command is part of the profile.
func (c *Command) Selected() bool {
	return c.SelectedVersion != ""
}

// IsRegistered reports whether the command is selected and registered.
func (c *Command) IsRegistered() bool {
	return c.Selected() && c.Registered != nil && *c.Registered
}

// HasVersion reports whether name is one of the command's versions.
func (c *Command) HasVersion(name string) bool {
	for _, v := range c.Versions {
		if v.Name == name {
			return true
		}
	}
	return false
}

// JoinID returns the node ID for a name path.
func JoinID(names []string) string {
	return strings.Join(names, Separator)
}

// SplitID returns the name path for a node ID. Name segments never contain
// the separator, so the split is lossless for IDs produced by JoinID.
func SplitID(id string) []string {
	id = strings.Trim(id, Separator)
	if id == "" {
		return nil
	}
	return strings.Split(id, Separator)
}

func leaf(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}

// Response is the command tree payload served by the workspace backend.
type Response struct {
	CommandGroups GroupPayloads `yaml:"commandGroups"`
}

// HelpPayload holds the help text of a node.
type HelpPayload struct {
	Short string   `yaml:"short"`
	Lines []string `yaml:"lines,omitempty"`
}

// GroupPayload is one command group in the payload.
type GroupPayload struct {
	Names         []string        `yaml:"names"`
	Help          HelpPayload     `yaml:"help"`
	Commands      CommandPayloads `yaml:"commands"`
	CommandGroups GroupPayloads   `yaml:"commandGroups"`
}

// CommandPayload is one command in the payload.
type CommandPayload struct {
	Names    []string         `yaml:"names"`
	Help     HelpPayload      `yaml:"help"`
	Versions []VersionPayload `yaml:"versions"`
}

// VersionPayload is one version entry of a command.
type VersionPayload struct {
	Name  string `yaml:"name"`
	Stage string `yaml:"stage"`
}

// GroupPayloads decodes a name-keyed object of groups, keeping declaration order.
type GroupPayloads []*GroupPayload

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *GroupPayloads) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of command groups", node.Line)
	}
	out := make(GroupPayloads, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var g GroupPayload
		if err := node.Content[i+1].Decode(&g); err != nil {
			return fmt.Errorf("command group %q: %w", node.Content[i].Value, err)
		}
		out = append(out, &g)
	}
	*p = out
	return nil
}

// CommandPayloads decodes a name-keyed object of commands, keeping declaration order.
type CommandPayloads []*CommandPayload

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *CommandPayloads) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of commands", node.Line)
	}
	out := make(CommandPayloads, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var c CommandPayload
		if err := node.Content[i+1].Decode(&c); err != nil {
			return fmt.Errorf("command %q: %w", node.Content[i].Value, err)
		}
		out = append(out, &c)
	}
	*p = out
	return nil
}

// DecodeResponse parses a command tree payload. The payload is JSON; it is read
// with the YAML decoder because JSON objects are YAML flow mappings and the
// YAML node tree keeps member order, which encoding/json maps would lose.
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := yaml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding command tree: %w", err)
	}
	return &resp, nil
}

// Build decodes resp into a tree with nothing selected. A nil response
// yields an empty tree.
func Build(name string, resp *Response) *Tree {
	t := &Tree{Name: name, CommandGroups: []*CommandGroup{}}
	if resp == nil {
		return t
	}
	for _, g := range resp.CommandGroups {
		t.CommandGroups = append(t.CommandGroups, decodeGroup(g))
	}
	return t
}

func decodeGroup(p *GroupPayload) *CommandGroup {
	g := &CommandGroup{
		ID:    JoinID(p.Names),
		Names: cloneNames(p.Names),
		Help:  p.Help.Short,
	}

	if p.Commands != nil {
		g.Commands = make([]*Command, 0, len(p.Commands))
		for _, c := range p.Commands {
			g.Commands = append(g.Commands, decodeCommand(c))
		}
		g.TotalCommands += len(g.Commands)
	}

	if p.CommandGroups != nil {
		g.CommandGroups = make([]*CommandGroup, 0, len(p.CommandGroups))
		for _, sub := range p.CommandGroups {
			child := decodeGroup(sub)
			g.CommandGroups = append(g.CommandGroups, child)
			g.TotalCommands += child.TotalCommands
		}
	}

	return g
}

func decodeCommand(p *CommandPayload) *Command {
	versions := make([]Version, 0, len(p.Versions))
	for _, v := range p.Versions {
		versions = append(versions, Version{Name: v.Name, Stage: v.Stage})
	}
	return &Command{
		ID:       JoinID(p.Names),
		Names:    cloneNames(p.Names),
		Help:     p.Help.Short,
		Versions: versions,
	}
}

func cloneNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

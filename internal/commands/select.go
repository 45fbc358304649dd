package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/config"
	"github.com/ruminaider/aaz-profiles/internal/git"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
)

// SelectOptions overrides the version and registration of selected commands.
type SelectOptions struct {
	Version    string
	Registered *bool
}

// ChangeResult describes a saved profile edit.
type ChangeResult struct {
	Profile   string
	Tree      *cmdtree.Tree
	Diff      profiles.Diff
	Committed bool
}

// ResolveProfile picks the profile to operate on: name when given, else the
// active profile, else the first configured profile. An active profile that
// is no longer configured is ignored.
func ResolveProfile(ws string, cfg config.Config, name string) (string, error) {
	if name == "" {
		active, err := profiles.ReadActiveProfile(ws)
		if err != nil {
			return "", err
		}
		if cfg.HasProfile(active) {
			return active, nil
		}
		return cfg.Profiles[0], nil
	}
	if !cfg.HasProfile(name) {
		return "", fmt.Errorf("profile %q not found (available: %s)", name, strings.Join(cfg.Profiles, ", "))
	}
	return name, nil
}

// LoadTree builds the command tree of a profile and applies its saved module
// view. An unsaved profile yields a tree with nothing selected.
func LoadTree(ws, profile string) (*cmdtree.Tree, error) {
	cfg, err := LoadConfig(ws)
	if err != nil {
		return nil, err
	}
	name, err := ResolveProfile(ws, cfg, profile)
	if err != nil {
		return nil, err
	}
	resp, err := LoadCommandTree(ws, cfg)
	if err != nil {
		return nil, err
	}
	tree := cmdtree.Build(name, resp)

	view, err := profiles.ReadProfile(ws, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tree, nil
		}
		return nil, err
	}
	tree, err = cmdtree.ApplyModView(tree, view)
	if err != nil {
		return nil, fmt.Errorf("profile %q does not match the command tree: %w", name, err)
	}
	return tree, nil
}

// ParseTarget converts CLI arguments into a name path. A single argument is
// read as a node ID ("network/vnet"); several arguments are the names
// themselves ("network vnet").
func ParseTarget(args []string) []string {
	if len(args) == 1 {
		return cmdtree.SplitID(args[0])
	}
	var names []string
	for _, a := range args {
		names = append(names, strings.Fields(a)...)
	}
	return names
}

// Select adds the command or command group at names to the profile and saves it.
func Select(ws, profile string, names []string, opts SelectOptions) (*ChangeResult, error) {
	tree, err := LoadTree(ws, profile)
	if err != nil {
		return nil, err
	}

	g, c := cmdtree.Find(tree, names)
	switch {
	case g == nil && c == nil:
		return nil, fmt.Errorf("%s not found in profile %q", cmdtree.DisplayName(names), tree.Name)
	case g != nil && g.TotalCommands == 0:
		return nil, fmt.Errorf("command group %s has no commands", cmdtree.DisplayName(names))
	case c != nil && len(c.Versions) == 0 && opts.Version == "":
		return nil, fmt.Errorf("command %s has no versions", cmdtree.DisplayName(names))
	case c != nil && opts.Version != "" && !c.HasVersion(opts.Version):
		return nil, fmt.Errorf("command %s has no version %q (available: %s)",
			cmdtree.DisplayName(names), opts.Version, strings.Join(VersionNames(c), ", "))
	}

	var updateOpts []cmdtree.UpdateOption
	if opts.Version != "" {
		updateOpts = append(updateOpts, cmdtree.WithVersion(opts.Version))
	}
	if opts.Registered != nil {
		updateOpts = append(updateOpts, cmdtree.WithRegistered(*opts.Registered))
	}

	updated := cmdtree.UpdatePath(tree, names, true, updateOpts...)
	if g != nil && opts.Version != "" {
		if err := checkVersions(updated); err != nil {
			return nil, err
		}
	}
	return SaveTree(ws, tree, updated, fmt.Sprintf("Select %s in %s", strings.Join(names, " "), tree.Name))
}

// Deselect removes the command or command group at names from the profile
// and saves it.
func Deselect(ws, profile string, names []string) (*ChangeResult, error) {
	tree, err := LoadTree(ws, profile)
	if err != nil {
		return nil, err
	}
	if g, c := cmdtree.Find(tree, names); g == nil && c == nil {
		return nil, fmt.Errorf("%s not found in profile %q", cmdtree.DisplayName(names), tree.Name)
	}

	updated := cmdtree.UpdatePath(tree, names, false)
	return SaveTree(ws, tree, updated, fmt.Sprintf("Deselect %s in %s", strings.Join(names, " "), tree.Name))
}

// Reset deselects every command of the profile and saves it.
func Reset(ws, profile string) (*ChangeResult, error) {
	tree, err := LoadTree(ws, profile)
	if err != nil {
		return nil, err
	}
	return SaveTree(ws, tree, cmdtree.Clear(tree), fmt.Sprintf("Reset %s", tree.Name))
}

// SaveTree exports after into profiles/<name>.yaml and commits it when the
// workspace is a git repository. before is the tree the edit started from.
func SaveTree(ws string, before, after *cmdtree.Tree, message string) (*ChangeResult, error) {
	if err := cmdtree.Check(after); err != nil {
		return nil, fmt.Errorf("refusing to save inconsistent tree: %w", err)
	}

	view := cmdtree.Export(after)
	if err := profiles.WriteProfile(ws, view); err != nil {
		return nil, err
	}

	result := &ChangeResult{
		Profile: after.Name,
		Tree:    after,
		Diff:    profiles.ComputeDiff(cmdtree.Export(before), view),
	}

	if git.IsRepo(ws) {
		committed, err := git.CommitPaths(ws, message, profiles.ProfilePath(ws, after.Name))
		if err != nil {
			return nil, err
		}
		result.Committed = committed
	}
	return result, nil
}

// VersionNames lists a command's version names in payload order.
func VersionNames(c *cmdtree.Command) []string {
	names := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		names[i] = v.Name
	}
	return names
}

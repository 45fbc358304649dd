package commands

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
)

// MatchCommands returns the name paths of every command whose ID matches the
// glob pattern, in tree order. "*" matches one name, "**" any number of
// names: "network/**/create", "storage/*/list".
func MatchCommands(t *cmdtree.Tree, pattern string) ([][]string, error) {
	pattern = strings.Trim(pattern, cmdtree.Separator)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	var matches [][]string
	var err error
	cmdtree.Walk(t, func(g *cmdtree.CommandGroup, c *cmdtree.Command, _ int) bool {
		if g != nil || err != nil {
			return err == nil
		}
		var ok bool
		ok, err = doublestar.Match(pattern, c.ID)
		if ok {
			matches = append(matches, c.Names)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	return matches, nil
}

// SelectMatching selects every command matching pattern and saves the profile
// in one commit. Commands without versions are skipped.
func SelectMatching(ws, profile, pattern string, opts SelectOptions) (*ChangeResult, error) {
	return updateMatching(ws, profile, pattern, true, opts)
}

// DeselectMatching deselects every command matching pattern.
func DeselectMatching(ws, profile, pattern string) (*ChangeResult, error) {
	return updateMatching(ws, profile, pattern, false, SelectOptions{})
}

func updateMatching(ws, profile, pattern string, selected bool, opts SelectOptions) (*ChangeResult, error) {
	tree, err := LoadTree(ws, profile)
	if err != nil {
		return nil, err
	}
	matches, err := MatchCommands(tree, pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no commands match %q in profile %q", pattern, tree.Name)
	}

	var updateOpts []cmdtree.UpdateOption
	if opts.Version != "" {
		updateOpts = append(updateOpts, cmdtree.WithVersion(opts.Version))
	}
	if opts.Registered != nil {
		updateOpts = append(updateOpts, cmdtree.WithRegistered(*opts.Registered))
	}

	updated := tree
	for _, names := range matches {
		if selected && opts.Version != "" {
			if _, c := cmdtree.Find(updated, names); c != nil && !c.HasVersion(opts.Version) {
				return nil, fmt.Errorf("command %s has no version %q", cmdtree.DisplayName(names), opts.Version)
			}
		}
		updated = cmdtree.UpdatePath(updated, names, selected, updateOpts...)
	}

	verb := "Select"
	if !selected {
		verb = "Deselect"
	}
	return SaveTree(ws, tree, updated, fmt.Sprintf("%s %s in %s", verb, pattern, tree.Name))
}

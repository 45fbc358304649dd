package commands

import (
	"fmt"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ImportOptions controls how a module view is merged into a profile.
type ImportOptions struct {
	// Replace clears the profile before applying the view. Without it, only
	// the entries named in the view change.
	Replace bool
}

// Import applies a module view document (YAML or JSON) to a profile and
// saves the result. The view's own name is ignored.
func Import(ws, profile string, data []byte, opts ImportOptions) (*ChangeResult, error) {
	view, err := profiles.ParseProfile(data)
	if err != nil {
		return nil, err
	}

	tree, err := LoadTree(ws, profile)
	if err != nil {
		return nil, err
	}

	base := tree
	if opts.Replace {
		base = cmdtree.Clear(tree)
	}
	updated, err := cmdtree.ApplyModView(base, view)
	if err != nil {
		return nil, fmt.Errorf("importing into %q: %w", tree.Name, err)
	}
	if err := checkVersions(updated); err != nil {
		return nil, fmt.Errorf("importing into %q: %w", tree.Name, err)
	}

	return SaveTree(ws, tree, updated, fmt.Sprintf("Import module view into %s", tree.Name))
}

// Export renders the module view of a profile.
func Export(ws, profile, format string) ([]byte, error) {
	tree, err := LoadTree(ws, profile)
	if err != nil {
		return nil, err
	}
	view := cmdtree.Export(tree)

	switch format {
	case "", FormatYAML:
		return profiles.MarshalProfile(view)
	case FormatJSON:
		return profiles.MarshalProfileJSON(view)
	default:
		return nil, fmt.Errorf("unknown format %q (expected %s or %s)", format, FormatYAML, FormatJSON)
	}
}

// checkVersions rejects selections pinned to versions the command lacks.
func checkVersions(t *cmdtree.Tree) error {
	var err error
	cmdtree.Walk(t, func(g *cmdtree.CommandGroup, c *cmdtree.Command, _ int) bool {
		if err != nil {
			return false
		}
		if g != nil {
			return g.SelectedCommands > 0
		}
		if c.Selected() && !c.HasVersion(c.SelectedVersion) {
			err = fmt.Errorf("command %s has no version %q", cmdtree.DisplayName(c.Names), c.SelectedVersion)
		}
		return true
	})
	return err
}

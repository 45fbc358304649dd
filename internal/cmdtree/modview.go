package cmdtree

import (
	"sort"

	"github.com/ruminaider/aaz-profiles/internal/profiles"
)

// ApplyModView copies the selection state recorded in a module view onto t.
//
// Only entries present in the view are touched: a group or command the view
// does not mention keeps whatever selection it had in t. Use Clear first to
// make the result match the view exactly.
//
// Every key in the view must name an existing child of the matching tree node;
// otherwise a *MissingError listing all unknown keys of that level is returned.
func ApplyModView(t *Tree, view *profiles.Profile) (*Tree, error) {
	if view == nil || view.CommandGroups == nil {
		return t, nil
	}
	groups, err := applyGroupViews(t.CommandGroups, view.CommandGroups, nil)
	if err != nil {
		return nil, err
	}
	return &Tree{Name: t.Name, CommandGroups: groups}, nil
}

func applyGroupViews(groups []*CommandGroup, views map[string]*profiles.CommandGroup, parent []string) ([]*CommandGroup, error) {
	pending := make(map[string]bool, len(views))
	for key := range views {
		pending[key] = true
	}

	out := make([]*CommandGroup, len(groups))
	for i, g := range groups {
		out[i] = g
		key := g.LeafName()
		if !pending[key] {
			continue
		}
		delete(pending, key)
		updated, err := applyGroupView(g, groupView(views[key], parent, key))
		if err != nil {
			return nil, err
		}
		out[i] = updated
	}

	if len(pending) > 0 {
		missing := make([][]string, 0, len(pending))
		for _, key := range sortedKeys(pending) {
			missing = append(missing, groupView(views[key], parent, key).Names)
		}
		return nil, &MissingError{Kind: "command group", Names: missing}
	}
	return out, nil
}

func applyGroupView(g *CommandGroup, view *profiles.CommandGroup) (*CommandGroup, error) {
	if !equalNames(g.Names, view.Names) {
		return nil, &NameMismatchError{Kind: "command group", Want: g.Names, Got: view.Names}
	}

	commands := g.Commands
	if view.Commands != nil {
		var err error
		commands, err = applyCommandViews(g.Commands, view.Commands, g.Names)
		if err != nil {
			return nil, err
		}
	}

	groups := g.CommandGroups
	if view.CommandGroups != nil {
		var err error
		groups, err = applyGroupViews(g.CommandGroups, view.CommandGroups, g.Names)
		if err != nil {
			return nil, err
		}
	}

	return withChildren(g, commands, groups), nil
}

func applyCommandViews(commands []*Command, views map[string]*profiles.Command, parent []string) ([]*Command, error) {
	pending := make(map[string]bool, len(views))
	for key := range views {
		pending[key] = true
	}

	var out []*Command
	if commands != nil {
		out = make([]*Command, len(commands))
	}
	for i, c := range commands {
		out[i] = c
		key := c.LeafName()
		if !pending[key] {
			continue
		}
		delete(pending, key)
		updated, err := applyCommandView(c, commandView(views[key], parent, key))
		if err != nil {
			return nil, err
		}
		out[i] = updated
	}

	if len(pending) > 0 {
		missing := make([][]string, 0, len(pending))
		for _, key := range sortedKeys(pending) {
			missing = append(missing, commandView(views[key], parent, key).Names)
		}
		return nil, &MissingError{Kind: "command", Names: missing}
	}
	return out, nil
}

func applyCommandView(c *Command, view *profiles.Command) (*Command, error) {
	if !equalNames(c.Names, view.Names) {
		return nil, &NameMismatchError{Kind: "command", Want: c.Names, Got: view.Names}
	}

	out := *c
	if view.Version == "" {
		out.SelectedVersion = ""
		out.Registered = nil
		return &out, nil
	}
	registered := view.Registered
	out.SelectedVersion = view.Version
	out.Registered = &registered
	return &out, nil
}

// groupView fills in the name path of a view entry that omitted it.
func groupView(v *profiles.CommandGroup, parent []string, key string) *profiles.CommandGroup {
	if v != nil && len(v.Names) > 0 {
		return v
	}
	out := &profiles.CommandGroup{Names: childNames(parent, key)}
	if v != nil {
		out.Commands = v.Commands
		out.CommandGroups = v.CommandGroups
	}
	return out
}

// commandView fills in the name path of a view entry that omitted it.
func commandView(v *profiles.Command, parent []string, key string) *profiles.Command {
	if v != nil && len(v.Names) > 0 {
		return v
	}
	out := &profiles.Command{Names: childNames(parent, key)}
	if v != nil {
		out.Version = v.Version
		out.Registered = v.Registered
	}
	return out
}

func childNames(parent []string, key string) []string {
	out := make([]string, 0, len(parent)+1)
	out = append(out, parent...)
	return append(out, key)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

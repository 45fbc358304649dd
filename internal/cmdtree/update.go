package cmdtree

// UpdateOption overrides the version or registration applied by Update.
type UpdateOption func(*change)

type change struct {
	selected   bool
	version    string
	registered *bool
}

// WithVersion pins selected commands to version instead of their current or
// first version.
func WithVersion(version string) UpdateOption {
	return func(c *change) {
		c.version = version
	}
}

// WithRegistered sets the registration flag of selected commands instead of
// keeping their current flag (or true for newly selected commands).
func WithRegistered(registered bool) UpdateOption {
	return func(c *change) {
		c.registered = &registered
	}
}

// Update selects or deselects the node with the given ID. See UpdatePath.
func Update(t *Tree, id string, selected bool, opts ...UpdateOption) *Tree {
	return UpdatePath(t, SplitID(id), selected, opts...)
}

// UpdatePath selects or deselects the node at the given name path.
//
// A command target changes that command only. A group target applies the same
// change to every command below it. Groups on the path to the target get fresh
// selection counts; every other node is returned as the same pointer. When
// nothing matches, the returned tree holds the original groups.
func UpdatePath(t *Tree, names []string, selected bool, opts ...UpdateOption) *Tree {
	ch := change{selected: selected}
	for _, opt := range opts {
		opt(&ch)
	}

	groups := make([]*CommandGroup, len(t.CommandGroups))
	for i, g := range t.CommandGroups {
		groups[i] = updateGroup(g, names, &ch)
	}
	return &Tree{Name: t.Name, CommandGroups: groups}
}

func updateGroup(g *CommandGroup, target []string, ch *change) *CommandGroup {
	if !hasPrefix(target, g.Names) {
		return g
	}
	if len(target) == len(g.Names) {
		return cascadeGroup(g, ch)
	}

	changed := false

	commands := g.Commands
	if g.Commands != nil {
		commands = make([]*Command, len(g.Commands))
		for i, c := range g.Commands {
			commands[i] = c
			if equalNames(c.Names, target) {
				commands[i] = updateCommand(c, ch)
				changed = changed || commands[i] != c
			}
		}
	}

	groups := g.CommandGroups
	if g.CommandGroups != nil {
		groups = make([]*CommandGroup, len(g.CommandGroups))
		for i, sub := range g.CommandGroups {
			groups[i] = updateGroup(sub, target, ch)
			changed = changed || groups[i] != sub
		}
	}

	if !changed {
		return g
	}
	return withChildren(g, commands, groups)
}

// cascadeGroup applies ch to every command below g.
func cascadeGroup(g *CommandGroup, ch *change) *CommandGroup {
	var commands []*Command
	if g.Commands != nil {
		commands = make([]*Command, len(g.Commands))
		for i, c := range g.Commands {
			commands[i] = updateCommand(c, ch)
		}
	}

	var groups []*CommandGroup
	if g.CommandGroups != nil {
		groups = make([]*CommandGroup, len(g.CommandGroups))
		for i, sub := range g.CommandGroups {
			groups[i] = cascadeGroup(sub, ch)
		}
	}

	return withChildren(g, commands, groups)
}

// updateCommand returns c unchanged when ch has no effect on it.
func updateCommand(c *Command, ch *change) *Command {
	if !ch.selected {
		if !c.Selected() {
			return c
		}
		out := *c
		out.SelectedVersion = ""
		return &out
	}

	version := ch.version
	if version == "" {
		version = c.SelectedVersion
	}
	if version == "" && len(c.Versions) > 0 {
		version = c.Versions[0].Name
	}
	if version == "" {
		// No version to pin; the command cannot be selected.
		return c
	}

	registered := true
	switch {
	case ch.registered != nil:
		registered = *ch.registered
	case c.Registered != nil:
		registered = *c.Registered
	}

	if c.SelectedVersion == version && c.Registered != nil && *c.Registered == registered {
		return c
	}

	out := *c
	out.SelectedVersion = version
	out.Registered = &registered
	return &out
}

// withChildren copies g with new children and recounts its selection.
func withChildren(g *CommandGroup, commands []*Command, groups []*CommandGroup) *CommandGroup {
	out := *g
	out.Commands = commands
	out.CommandGroups = groups
	out.SelectedCommands = countSelected(commands, groups)
	return &out
}

func countSelected(commands []*Command, groups []*CommandGroup) int {
	n := 0
	for _, c := range commands {
		if c.Selected() {
			n++
		}
	}
	for _, g := range groups {
		n += g.SelectedCommands
	}
	return n
}

// hasPrefix reports whether prefix is a leading subsequence of names.
func hasPrefix(names, prefix []string) bool {
	if len(prefix) == 0 || len(prefix) > len(names) {
		return false
	}
	for i := range prefix {
		if names[i] != prefix[i] {
			return false
		}
	}
	return true
}

func equalNames(a, b []string) bool {
	return len(a) == len(b) && hasPrefix(a, b)
}

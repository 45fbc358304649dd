package cmdtree

import "fmt"

// WalkFunc is called for every node in depth-first order, a group's commands
// before its sub-groups. Exactly one of g and c is non-nil. Returning false
// for a group skips everything below it.
type WalkFunc func(g *CommandGroup, c *Command, depth int) bool

// Walk visits every node of t.
func Walk(t *Tree, fn WalkFunc) {
	for _, g := range t.CommandGroups {
		walkGroup(g, 0, fn)
	}
}

func walkGroup(g *CommandGroup, depth int, fn WalkFunc) {
	if !fn(g, nil, depth) {
		return
	}
	for _, c := range g.Commands {
		fn(nil, c, depth+1)
	}
	for _, sub := range g.CommandGroups {
		walkGroup(sub, depth+1, fn)
	}
}

// Find returns the group or command at the name path. Both results are nil
// when nothing matches.
func Find(t *Tree, names []string) (*CommandGroup, *Command) {
	groups := t.CommandGroups
	for {
		var next *CommandGroup
		for _, g := range groups {
			if !hasPrefix(names, g.Names) {
				continue
			}
			if len(g.Names) == len(names) {
				return g, nil
			}
			for _, c := range g.Commands {
				if equalNames(c.Names, names) {
					return nil, c
				}
			}
			next = g
			break
		}
		if next == nil {
			return nil, nil
		}
		groups = next.CommandGroups
	}
}

// Clear deselects every command in t.
func Clear(t *Tree) *Tree {
	ch := change{selected: false}
	groups := make([]*CommandGroup, len(t.CommandGroups))
	for i, g := range t.CommandGroups {
		if g.SelectedCommands == 0 {
			groups[i] = g
			continue
		}
		groups[i] = cascadeGroup(g, &ch)
	}
	return &Tree{Name: t.Name, CommandGroups: groups}
}

// Stats summarizes the selection of a whole tree.
type Stats struct {
	Groups     int
	Commands   int
	Selected   int
	Registered int
}

// Count returns selection totals for t.
func Count(t *Tree) Stats {
	var s Stats
	Walk(t, func(g *CommandGroup, c *Command, _ int) bool {
		if g != nil {
			s.Groups++
			return true
		}
		s.Commands++
		if c.Selected() {
			s.Selected++
		}
		if c.IsRegistered() {
			s.Registered++
		}
		return true
	})
	return s
}

// Check verifies the counting invariants of every group: the selected count
// equals the selected direct commands plus the sub-groups' selected counts,
// and lies within [0, TotalCommands].
func Check(t *Tree) error {
	for _, g := range t.CommandGroups {
		if err := checkGroup(g); err != nil {
			return err
		}
	}
	return nil
}

func checkGroup(g *CommandGroup) error {
	total := len(g.Commands)
	for _, sub := range g.CommandGroups {
		if err := checkGroup(sub); err != nil {
			return err
		}
		total += sub.TotalCommands
	}
	for _, c := range g.Commands {
		if c.Selected() && c.Registered == nil {
			return fmt.Errorf("command %s: selected without registration flag", DisplayName(c.Names))
		}
	}
	if total != g.TotalCommands {
		return fmt.Errorf("group %s: total commands %d, counted %d", DisplayName(g.Names), g.TotalCommands, total)
	}
	if want := countSelected(g.Commands, g.CommandGroups); g.SelectedCommands != want {
		return fmt.Errorf("group %s: selected commands %d, counted %d", DisplayName(g.Names), g.SelectedCommands, want)
	}
	if g.SelectedCommands < 0 || g.SelectedCommands > g.TotalCommands {
		return fmt.Errorf("group %s: selected commands %d out of range [0, %d]", DisplayName(g.Names), g.SelectedCommands, g.TotalCommands)
	}
	return nil
}

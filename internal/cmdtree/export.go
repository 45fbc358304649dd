package cmdtree

import "github.com/ruminaider/aaz-profiles/internal/profiles"

// Export converts t into its module view: only groups with at least one
// selected command and only selected commands are kept, keyed by leaf name.
// The result shares no memory with t.
func Export(t *Tree) *profiles.Profile {
	p := &profiles.Profile{
		Name:          t.Name,
		CommandGroups: map[string]*profiles.CommandGroup{},
	}
	for _, g := range t.CommandGroups {
		if view := exportGroup(g); view != nil {
			p.CommandGroups[g.LeafName()] = view
		}
	}
	return p
}

func exportGroup(g *CommandGroup) *profiles.CommandGroup {
	if g.SelectedCommands == 0 {
		return nil
	}

	view := &profiles.CommandGroup{Names: cloneNames(g.Names)}

	for _, c := range g.Commands {
		if !c.Selected() {
			continue
		}
		if view.Commands == nil {
			view.Commands = map[string]*profiles.Command{}
		}
		view.Commands[c.LeafName()] = &profiles.Command{
			Names:      cloneNames(c.Names),
			Version:    c.SelectedVersion,
			Registered: c.Registered == nil || *c.Registered,
		}
	}

	for _, sub := range g.CommandGroups {
		sv := exportGroup(sub)
		if sv == nil {
			continue
		}
		if view.CommandGroups == nil {
			view.CommandGroups = map[string]*profiles.CommandGroup{}
		}
		view.CommandGroups[sub.LeafName()] = sv
	}

	return view
}

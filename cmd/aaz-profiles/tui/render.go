package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
)

// GroupCheckbox returns [x], [-] or [ ] for a group's selection state.
func GroupCheckbox(g *cmdtree.CommandGroup) string {
	switch {
	case g.FullySelected():
		return SelectedStyle.Render("[x]")
	case g.Indeterminate():
		return PartialStyle.Render("[-]")
	default:
		return UnselectedStyle.Render("[ ]")
	}
}

// CommandCheckbox returns [x] or [ ] for a command.
func CommandCheckbox(c *cmdtree.Command) string {
	if c.Selected() {
		return SelectedStyle.Render("[x]")
	}
	return UnselectedStyle.Render("[ ]")
}

// GroupLabel renders "name (selected/total)".
func GroupLabel(g *cmdtree.CommandGroup) string {
	return g.LeafName() + " " + DimStyle.Render(fmt.Sprintf("(%d/%d)", g.SelectedCommands, g.TotalCommands))
}

// CommandLabel renders the command name followed by its selected version and
// registration state.
func CommandLabel(c *cmdtree.Command) string {
	label := c.LeafName()
	if !c.Selected() {
		return label
	}
	label += " " + VersionStyle.Render(c.SelectedVersion)
	for _, v := range c.Versions {
		if v.Name == c.SelectedVersion && v.Stage != "" && v.Stage != "Stable" {
			label += " " + PreviewStageStyle.Render(v.Stage)
		}
	}
	if !c.IsRegistered() {
		label += " " + UnregisteredStyle.Render("unregistered")
	}
	return label
}

// RenderTree draws t with box-drawing branches. maxDepth limits how many
// group levels are expanded; 0 means unlimited. onlySelected hides groups and
// commands with nothing selected.
func RenderTree(t *cmdtree.Tree, maxDepth int, onlySelected bool) string {
	root := tree.Root(HeaderStyle.Render(t.Name)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(EnumeratorStyle)
	for _, g := range t.CommandGroups {
		if onlySelected && g.SelectedCommands == 0 {
			continue
		}
		root.Child(groupNode(g, 1, maxDepth, onlySelected))
	}
	return root.String()
}

func groupNode(g *cmdtree.CommandGroup, depth, maxDepth int, onlySelected bool) *tree.Tree {
	node := tree.Root(GroupCheckbox(g) + " " + GroupLabel(g)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(EnumeratorStyle)
	if maxDepth > 0 && depth >= maxDepth {
		return node
	}
	for _, c := range g.Commands {
		if onlySelected && !c.Selected() {
			continue
		}
		node.Child(CommandCheckbox(c) + " " + CommandLabel(c))
	}
	for _, sub := range g.CommandGroups {
		if onlySelected && sub.SelectedCommands == 0 {
			continue
		}
		node.Child(groupNode(sub, depth+1, maxDepth, onlySelected))
	}
	return node
}

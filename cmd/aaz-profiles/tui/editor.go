package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
)

// row is one visible line of the editor: a group or a command.
type row struct {
	group   *cmdtree.CommandGroup
	command *cmdtree.Command
	depth   int
}

func (r row) names() []string {
	if r.group != nil {
		return r.group.Names
	}
	return r.command.Names
}

// Editor is an interactive command tree editor for one profile. Every edit
// replaces the tree with a new one from cmdtree.UpdatePath.
type Editor struct {
	original *cmdtree.Tree
	tree     *cmdtree.Tree
	expanded map[string]bool // by group ID
	keys     KeyMap
	help     help.Model
	rows     []row
	cursor   int
	offset   int
	height   int
	saved    bool
	message  string
}

// NewEditor creates an Editor over t. Top-level groups start collapsed.
func NewEditor(t *cmdtree.Tree) Editor {
	e := Editor{
		original: t,
		tree:     t,
		expanded: make(map[string]bool),
		keys:     DefaultKeyMap(),
		help:     newHelp(),
		height:   20,
	}
	e.rebuild()
	return e
}

// Tree returns the edited tree.
func (e Editor) Tree() *cmdtree.Tree { return e.tree }

// Original returns the tree the editor started from.
func (e Editor) Original() *cmdtree.Tree { return e.original }

// Saved reports whether the user quit with "s".
func (e Editor) Saved() bool { return e.saved }

// Changes compares the edited tree with the original.
func (e Editor) Changes() profiles.Diff {
	return profiles.ComputeDiff(cmdtree.Export(e.original), cmdtree.Export(e.tree))
}

// Cursor returns the name path under the cursor.
func (e Editor) Cursor() []string {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return nil
	}
	return e.rows[e.cursor].names()
}

func (e Editor) Init() tea.Cmd { return nil }

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.help.Width = msg.Width
		e.height = msg.Height - 3 // title + blank + status bar
		if e.height < 1 {
			e.height = 1
		}
		e.clampScroll()
	case tea.KeyMsg:
		e.message = ""
		switch {
		case key.Matches(msg, e.keys.Up):
			e.moveCursor(-1)
		case key.Matches(msg, e.keys.Down):
			e.moveCursor(+1)
		case key.Matches(msg, e.keys.Expand):
			e.setExpanded(true)
		case key.Matches(msg, e.keys.Collapse):
			e.setExpanded(false)
		case key.Matches(msg, e.keys.Toggle):
			e.toggle()
		case key.Matches(msg, e.keys.Version):
			e.cycleVersion()
		case key.Matches(msg, e.keys.Register):
			e.toggleRegistered()
		case key.Matches(msg, e.keys.Save):
			e.saved = true
			return e, tea.Quit
		case key.Matches(msg, e.keys.Quit):
			return e, tea.Quit
		}
	}
	return e, nil
}

func (e Editor) View() string {
	var b strings.Builder
	stats := cmdtree.Count(e.tree)
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s: %d/%d commands selected", e.tree.Name, stats.Selected, stats.Commands)))
	b.WriteString("\n\n")

	if len(e.rows) == 0 {
		b.WriteString(ContentPaneStyle.Render("(empty command tree)"))
		b.WriteString("\n")
	}

	end := e.offset + e.height
	if end > len(e.rows) {
		end = len(e.rows)
	}
	var body strings.Builder
	for i := e.offset; i < end; i++ {
		body.WriteString(e.renderRow(i))
		body.WriteString("\n")
	}
	b.WriteString(ContentPaneStyle.Render(strings.TrimRight(body.String(), "\n")))
	b.WriteString("\n")
	b.WriteString(e.statusBar())
	return b.String()
}

func (e Editor) renderRow(i int) string {
	r := e.rows[i]
	cursor := "  "
	if i == e.cursor {
		cursor = "> "
	}
	indent := strings.Repeat("  ", r.depth)

	if r.group != nil {
		arrow := "▸"
		if e.expanded[r.group.ID] {
			arrow = "▾"
		}
		name := r.group.LeafName()
		if i == e.cursor {
			name = CurrentStyle.Render(name)
		}
		counts := DimStyle.Render(fmt.Sprintf("(%d/%d)", r.group.SelectedCommands, r.group.TotalCommands))
		return cursor + indent + arrow + " " + GroupCheckbox(r.group) + " " + name + " " + counts
	}

	label := CommandLabel(r.command)
	if i == e.cursor {
		label = CurrentStyle.Render(r.command.LeafName()) + strings.TrimPrefix(label, r.command.LeafName())
	}
	return cursor + indent + "  " + CommandCheckbox(r.command) + " " + label
}

func (e Editor) statusBar() string {
	line := e.help.ShortHelpView(e.keys.ShortHelp())
	if d := e.Changes(); !d.IsEmpty() {
		line = DirtyStyle.Render(d.Summary()) + " " + line
	}
	if e.message != "" {
		line += " " + DimStyle.Render(e.message)
	}
	return line
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = StatusBarKeyStyle
	h.Styles.ShortDesc = StatusBarStyle
	h.Styles.ShortSeparator = StatusBarStyle
	return h
}

// rebuild flattens the visible part of the tree into rows.
func (e *Editor) rebuild() {
	e.rows = nil
	cmdtree.Walk(e.tree, func(g *cmdtree.CommandGroup, c *cmdtree.Command, depth int) bool {
		if g != nil {
			e.rows = append(e.rows, row{group: g, depth: depth})
			return e.expanded[g.ID]
		}
		e.rows = append(e.rows, row{command: c, depth: depth})
		return true
	})
	if e.cursor >= len(e.rows) {
		e.cursor = len(e.rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
	e.clampScroll()
}

func (e *Editor) apply(names []string, selected bool, opts ...cmdtree.UpdateOption) {
	e.tree = cmdtree.UpdatePath(e.tree, names, selected, opts...)
	e.rebuild()
}

func (e *Editor) current() (row, bool) {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return row{}, false
	}
	return e.rows[e.cursor], true
}

func (e *Editor) moveCursor(dir int) {
	next := e.cursor + dir
	if next < 0 || next >= len(e.rows) {
		return
	}
	e.cursor = next
	e.clampScroll()
}

// setExpanded expands or collapses the group under the cursor. Collapsing a
// command or a collapsed group moves the cursor to its parent group.
func (e *Editor) setExpanded(open bool) {
	r, ok := e.current()
	if !ok {
		return
	}
	if r.group != nil && (open || e.expanded[r.group.ID]) {
		e.expanded[r.group.ID] = open
		e.rebuild()
		return
	}
	if open {
		return
	}
	for i := e.cursor - 1; i >= 0; i-- {
		if e.rows[i].group != nil && e.rows[i].depth < r.depth {
			e.cursor = i
			e.clampScroll()
			return
		}
	}
}

func (e *Editor) toggle() {
	r, ok := e.current()
	if !ok {
		return
	}
	if r.group != nil {
		if r.group.TotalCommands == 0 {
			e.message = "group has no commands"
			return
		}
		e.apply(r.group.Names, !r.group.FullySelected())
		return
	}
	if len(r.command.Versions) == 0 {
		e.message = "command has no versions"
		return
	}
	e.apply(r.command.Names, !r.command.Selected())
}

// cycleVersion selects the command under the cursor with its next version.
func (e *Editor) cycleVersion() {
	r, ok := e.current()
	if !ok || r.command == nil || len(r.command.Versions) == 0 {
		return
	}
	c := r.command
	next := c.Versions[0].Name
	if c.Selected() {
		for i, v := range c.Versions {
			if v.Name == c.SelectedVersion {
				next = c.Versions[(i+1)%len(c.Versions)].Name
				break
			}
		}
	}
	e.apply(c.Names, true, cmdtree.WithVersion(next))
}

// toggleRegistered flips the registration of a selected command.
func (e *Editor) toggleRegistered() {
	r, ok := e.current()
	if !ok || r.command == nil {
		return
	}
	if !r.command.Selected() {
		e.message = "select the command first"
		return
	}
	e.apply(r.command.Names, true, cmdtree.WithRegistered(!r.command.IsRegistered()))
}

// clampScroll keeps the cursor inside the visible window.
func (e *Editor) clampScroll() {
	if e.height <= 0 {
		return
	}
	if e.cursor < e.offset {
		e.offset = e.cursor
	}
	if e.cursor >= e.offset+e.height {
		e.offset = e.cursor - e.height + 1
	}
	maxOffset := len(e.rows) - e.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if e.offset > maxOffset {
		e.offset = maxOffset
	}
}

package profiles

import (
	"fmt"
	"sort"
	"strings"
)

// Diff describes how the selected commands of one view differ from another.
// Entries are space-joined command names, sorted.
type Diff struct {
	Added   []string
	Removed []string
	Changed []string // same command, different version or registration
}

// ComputeDiff compares before against after. A nil profile is treated as empty.
func ComputeDiff(before, after *Profile) Diff {
	oldCmds := Commands(before)
	newCmds := Commands(after)

	var d Diff
	for name, nc := range newCmds {
		oc, ok := oldCmds[name]
		if !ok {
			d.Added = append(d.Added, name)
			continue
		}
		if oc.Version != nc.Version || oc.Registered != nc.Registered {
			d.Changed = append(d.Changed, name)
		}
	}
	for name := range oldCmds {
		if _, ok := newCmds[name]; !ok {
			d.Removed = append(d.Removed, name)
		}
	}

	sort.Strings(d.Added)
	sort.Strings(d.Removed)
	sort.Strings(d.Changed)
	return d
}

// IsEmpty reports whether the two views select the same commands identically.
func (d Diff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Summary returns "+N, -N, ~N" style text, or "no changes".
func (d Diff) Summary() string {
	var parts []string
	if n := len(d.Added); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d %s", n, pluralize("command", n)))
	}
	if n := len(d.Removed); n > 0 {
		parts = append(parts, fmt.Sprintf("-%d %s", n, pluralize("command", n)))
	}
	if n := len(d.Changed); n > 0 {
		parts = append(parts, fmt.Sprintf("~%d %s", n, pluralize("command", n)))
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}

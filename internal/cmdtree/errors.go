package cmdtree

import (
	"errors"
	"fmt"
	"strings"
)

// DisplayPrefix is the CLI entry point prepended to command names in messages.
const DisplayPrefix = "az"

var (
	// ErrNameMismatch is wrapped by NameMismatchError.
	ErrNameMismatch = errors.New("module view names do not match the command tree")

	// ErrMissingInBaseTree is wrapped by MissingError.
	ErrMissingInBaseTree = errors.New("missing in base command tree")
)

// NameMismatchError is returned when a module view node is applied to a tree
// node with a different name path.
type NameMismatchError struct {
	Kind string // "command" or "command group"
	Want []string
	Got  []string
}

func (e *NameMismatchError) Error() string {
	return fmt.Sprintf("invalid %s names: %s (expected %s)",
		e.Kind, DisplayName(e.Got), DisplayName(e.Want))
}

func (e *NameMismatchError) Unwrap() error {
	return ErrNameMismatch
}

// MissingError is returned when a module view names commands or command
// groups that the command tree does not have. Names lists every missing entry
// found at one level of the view.
type MissingError struct {
	Kind  string // "command" or "command group"
	Names [][]string
}

func (e *MissingError) Error() string {
	display := make([]string, len(e.Names))
	for i, n := range e.Names {
		display[i] = DisplayName(n)
	}
	return fmt.Sprintf("%ss %s: %s", e.Kind, ErrMissingInBaseTree, strings.Join(display, ", "))
}

func (e *MissingError) Unwrap() error {
	return ErrMissingInBaseTree
}

// DisplayName formats a name path as a quoted CLI invocation, e.g. `az network list`.
func DisplayName(names []string) string {
	parts := append([]string{DisplayPrefix}, names...)
	return "`" + strings.Join(parts, " ") + "`"
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/aaz-profiles/internal/commands"
)

// interactive reports whether prompts can be shown.
func interactive() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

// printChange reports a saved profile edit.
func printChange(result *commands.ChangeResult) {
	if result.Diff.IsEmpty() {
		fmt.Printf("Profile %q unchanged.\n", result.Profile)
		return
	}
	fmt.Printf("Profile %q: %s\n", result.Profile, result.Diff.Summary())
	for _, name := range result.Diff.Added {
		fmt.Printf("  + %s\n", name)
	}
	for _, name := range result.Diff.Removed {
		fmt.Printf("  - %s\n", name)
	}
	for _, name := range result.Diff.Changed {
		fmt.Printf("  ~ %s\n", name)
	}
	if result.Committed {
		fmt.Println("Changes committed.")
	}
}

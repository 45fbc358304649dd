package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/aaz-profiles/cmd/aaz-profiles/tui"
	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/spf13/cobra"
)

var editProfile string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a profile's selection interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return fmt.Errorf("edit needs a terminal; use select, deselect or import instead")
		}

		ws := workspace()
		tree, err := commands.LoadTree(ws, editProfile)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewEditor(tree), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		editor := finalModel.(tui.Editor)
		if !editor.Saved() {
			if !editor.Changes().IsEmpty() {
				fmt.Println("Discarded changes.")
			}
			return nil
		}

		result, err := commands.SaveTree(ws, editor.Original(), editor.Tree(),
			fmt.Sprintf("Edit %s: %s", tree.Name, editor.Changes().Summary()))
		if err != nil {
			return err
		}
		printChange(result)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editProfile, "profile", "", "Profile to edit (default: active profile)")
}

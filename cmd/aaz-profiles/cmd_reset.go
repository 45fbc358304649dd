package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/spf13/cobra"
)

var (
	resetProfile string
	resetYes     bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Deselect every command of a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()

		if !resetYes {
			if !interactive() {
				return fmt.Errorf("refusing to reset without confirmation; pass --yes")
			}
			cfg, err := commands.LoadConfig(ws)
			if err != nil {
				return err
			}
			name, err := commands.ResolveProfile(ws, cfg, resetProfile)
			if err != nil {
				return err
			}
			var confirmed bool
			err = huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Deselect every command of profile %q?", name)).
						Description("The previous selection stays in the workspace git history").
						Value(&confirmed),
				),
			).Run()
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := commands.Reset(ws, resetProfile)
		if err != nil {
			return err
		}
		printChange(result)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringVar(&resetProfile, "profile", "", "Profile to reset (default: active profile)")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

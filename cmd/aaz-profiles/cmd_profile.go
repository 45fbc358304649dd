package main

import (
	"fmt"

	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
	"github.com/spf13/cobra"
)

var historyLimit int

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()
		cfg, err := commands.LoadConfig(ws)
		if err != nil {
			return err
		}
		active, err := commands.ResolveProfile(ws, cfg, "")
		if err != nil {
			return err
		}

		for _, name := range cfg.Profiles {
			summary := "not saved"
			p, err := profiles.ReadProfile(ws, name)
			if err == nil {
				summary = profiles.ProfileSummary(p)
			}
			if name == active {
				fmt.Printf("* %s: %s\n", name, summary)
			} else {
				fmt.Printf("  %s: %s\n", name, summary)
			}
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Set the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := commands.SetActive(workspace(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Active profile: %s\n", args[0])
		return nil
	},
}

var profileStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the selection summary of every profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Status(workspace())
		if err != nil {
			return err
		}

		if result.Module != "" {
			fmt.Printf("Module: %s\n\n", result.Module)
		}
		for _, p := range result.Profiles {
			marker := " "
			if p.Active {
				marker = "*"
			}
			fmt.Printf("%s %-20s %d/%d commands selected, %d registered\n",
				marker, p.Name, p.Stats.Selected, p.Stats.Commands, p.Stats.Registered)
			if !p.Saved {
				fmt.Println("    (no saved module view)")
			}
		}

		if result.IsRepo && !result.Clean {
			fmt.Println("\nThe workspace has uncommitted changes.")
		}
		return nil
	},
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show the commits that changed a profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		log, err := commands.History(workspace(), name, historyLimit)
		if err != nil {
			return err
		}
		if len(log) == 0 {
			fmt.Println("No history.")
			return nil
		}
		for _, line := range log {
			fmt.Println(line)
		}
		return nil
	},
}

var profilePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete saved views of profiles no longer in config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		pruned, err := commands.Prune(workspace())
		if err != nil {
			return err
		}
		if len(pruned) == 0 {
			fmt.Println("Nothing to prune.")
			return nil
		}
		for _, name := range pruned {
			fmt.Printf("Pruned %s\n", name)
		}
		return nil
	},
}

func init() {
	profileHistoryCmd.Flags().IntVarP(&historyLimit, "number", "n", 10, "Number of commits to show")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileStatusCmd)
	profileCmd.AddCommand(profileHistoryCmd)
	profileCmd.AddCommand(profilePruneCmd)
}

package main

import (
	"fmt"

	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/spf13/cobra"
)

var (
	initCommandTree string
	initModule      string
	initProfiles    []string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a workspace from a command tree payload",
	Example: "  aaz-profiles init --command-tree commandtree.json --module network \\\n" +
		"      --profile latest --profile 2020-09-01-hybrid",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()
		result, err := commands.Init(commands.InitOptions{
			Workspace:   ws,
			CommandTree: initCommandTree,
			Module:      initModule,
			Profiles:    initProfiles,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Initialized workspace at %s\n", ws)
		fmt.Printf("  Command tree: %d commands\n", result.TotalCommands)
		fmt.Printf("  Profiles:     %s\n", joinNames(result.Profiles))
		if result.GitInitialized {
			fmt.Println("  Created git repository")
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initCommandTree, "command-tree", "", "Path to the command tree payload (JSON)")
	initCmd.Flags().StringVar(&initModule, "module", "", "Name of the CLI module")
	initCmd.Flags().StringSliceVarP(&initProfiles, "profile", "p", nil, "Profile to create (repeatable, default: latest)")
	_ = initCmd.MarkFlagRequired("command-tree")
}

package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/aaz-profiles/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var workspaceFlag string

var rootCmd = &cobra.Command{
	Use:   "aaz-profiles",
	Short: "Manage command selections of AAZ-based CLI modules",
	Long: "aaz-profiles tracks which commands of a CLI command tree are selected, at which\n" +
		"API version, for each profile of a module. Selections are stored as module views\n" +
		"in a git-backed workspace.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show status
		return profileStatusCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aaz-profiles %s\n", version)
	},
}

// workspace returns the --workspace flag, or the default workspace location.
func workspace() string {
	if workspaceFlag != "" {
		return workspaceFlag
	}
	return paths.WorkspaceDir()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "",
		fmt.Sprintf("Workspace directory (default $%s or ~/.aaz-profiles)", paths.WorkspaceEnv))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(deselectCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

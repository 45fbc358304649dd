package main

import (
	"fmt"

	"github.com/ruminaider/aaz-profiles/cmd/aaz-profiles/tui"
	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/spf13/cobra"
)

var (
	treeProfile  string
	treeDepth    int
	treeSelected bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [target...]",
	Short: "Show the command tree with its selection state",
	Long: "Show the command tree of a profile. [x] marks selected commands and fully\n" +
		"selected groups, [-] marks groups with some commands selected.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := commands.LoadTree(workspace(), treeProfile)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			names := commands.ParseTarget(args)
			g, c := cmdtree.Find(tree, names)
			switch {
			case g != nil:
				tree = &cmdtree.Tree{Name: tree.Name, CommandGroups: []*cmdtree.CommandGroup{g}}
			case c != nil:
				fmt.Println(tui.CommandCheckbox(c) + " " + cmdtree.DisplayName(c.Names) + " " + tui.CommandLabel(c))
				for _, v := range c.Versions {
					fmt.Printf("    %s %s\n", v.Name, v.Stage)
				}
				return nil
			default:
				return fmt.Errorf("%s not found in profile %q", cmdtree.DisplayName(names), tree.Name)
			}
		}

		fmt.Println(tui.RenderTree(tree, treeDepth, treeSelected))
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&treeProfile, "profile", "", "Profile to show (default: active profile)")
	treeCmd.Flags().IntVar(&treeDepth, "depth", 0, "Limit the number of group levels shown (0 = all)")
	treeCmd.Flags().BoolVar(&treeSelected, "selected", false, "Only show selected commands")
}

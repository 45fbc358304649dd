package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/spf13/cobra"
)

var (
	selectProfile      string
	selectVersion      string
	selectUnregistered bool
	selectMatch        string
	deselectProfile    string
	deselectMatch      string
)

// targetArgs requires either a target or --match, not both.
func targetArgs(match *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case *match == "" && len(args) == 0:
			return fmt.Errorf("requires a target or --match")
		case *match != "" && len(args) > 0:
			return fmt.Errorf("--match cannot be combined with a target")
		}
		return nil
	}
}

var selectCmd = &cobra.Command{
	Use:   "select [target...]",
	Short: "Select a command or command group",
	Long: "Select a command or every command of a group. The target is a node ID\n" +
		"(network/vnet/create) or the command names (network vnet create).",
	Example: "  aaz-profiles select network vnet\n" +
		"  aaz-profiles select network/vnet/create --version 2021-05-01\n" +
		"  aaz-profiles select --match 'network/**/list'",
	Args: targetArgs(&selectMatch),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()

		opts := commands.SelectOptions{Version: selectVersion}
		if cmd.Flags().Changed("unregistered") {
			registered := !selectUnregistered
			opts.Registered = &registered
		}

		if selectMatch != "" {
			result, err := commands.SelectMatching(ws, selectProfile, selectMatch, opts)
			if err != nil {
				return err
			}
			printChange(result)
			return nil
		}

		names := commands.ParseTarget(args)

		if opts.Version == "" && interactive() {
			version, err := promptVersion(ws, names)
			if err != nil {
				return err
			}
			opts.Version = version
		}

		result, err := commands.Select(ws, selectProfile, names, opts)
		if err != nil {
			return err
		}
		printChange(result)
		return nil
	},
}

var deselectCmd = &cobra.Command{
	Use:   "deselect [target...]",
	Short: "Deselect a command or command group",
	Args:  targetArgs(&deselectMatch),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result *commands.ChangeResult
		var err error
		if deselectMatch != "" {
			result, err = commands.DeselectMatching(workspace(), deselectProfile, deselectMatch)
		} else {
			result, err = commands.Deselect(workspace(), deselectProfile, commands.ParseTarget(args))
		}
		if err != nil {
			return err
		}
		printChange(result)
		return nil
	},
}

// promptVersion asks for a version when the target is an unselected command
// with more than one version. It returns "" when no prompt was needed.
func promptVersion(ws string, names []string) (string, error) {
	tree, err := commands.LoadTree(ws, selectProfile)
	if err != nil {
		return "", err
	}
	_, c := cmdtree.Find(tree, names)
	if c == nil || c.Selected() || len(c.Versions) < 2 {
		return "", nil
	}

	options := make([]huh.Option[string], 0, len(c.Versions))
	for _, v := range c.Versions {
		label := v.Name
		if v.Stage != "" {
			label = fmt.Sprintf("%s (%s)", v.Name, v.Stage)
		}
		options = append(options, huh.NewOption(label, v.Name))
	}

	version := c.Versions[0].Name
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Which version of %s?", cmdtree.DisplayName(c.Names))).
				Options(options...).
				Value(&version),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return version, nil
}

func init() {
	selectCmd.Flags().StringVar(&selectProfile, "profile", "", "Profile to change (default: active profile)")
	selectCmd.Flags().StringVar(&selectVersion, "version", "", "API version to select (default: current or newest)")
	selectCmd.Flags().BoolVar(&selectUnregistered, "unregistered", false, "Keep the commands out of the CLI command table")
	selectCmd.Flags().StringVar(&selectMatch, "match", "", "Select every command whose ID matches a glob (* one name, ** any)")
	deselectCmd.Flags().StringVar(&deselectProfile, "profile", "", "Profile to change (default: active profile)")
	deselectCmd.Flags().StringVar(&deselectMatch, "match", "", "Deselect every command whose ID matches a glob")
}

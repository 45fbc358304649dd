package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/spf13/cobra"
)

var (
	importProfile string
	importReplace bool
	exportProfile string
	exportFormat  string
	exportOutput  string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Apply a module view (YAML or JSON) to a profile",
	Long: "Apply a module view to a profile. Entries in the view overwrite the profile's\n" +
		"selection; everything else is kept unless --replace is given. Use - to read stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading module view: %w", err)
		}

		result, err := commands.Import(workspace(), importProfile, data, commands.ImportOptions{Replace: importReplace})
		if err != nil {
			return err
		}
		printChange(result)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the module view of a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := commands.Export(workspace(), exportProfile, exportFormat)
		if err != nil {
			return err
		}
		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOutput)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importProfile, "profile", "", "Profile to change (default: active profile)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Deselect everything not named in the view")
	exportCmd.Flags().StringVar(&exportProfile, "profile", "", "Profile to export (default: active profile)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", commands.FormatYAML, "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hitassert/packages/cases"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>",
	Short: "List all cases in case files",
	Long: `List all cases defined in .yaml or .yml case files.

Examples:
  hitassert list times.yaml
  hitassert list ./cases/`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .yaml or .yml case files found")
	}

	for _, file := range files {
		f, err := cases.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error parsing %s: %v\n", file, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", file)
		for _, c := range f.Cases {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s [%s] %s vs %s\n", c.Name, c.Check, c.Subject, c.Reference)
			if len(c.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "    tags: %s\n", strings.Join(c.Tags, ", "))
			}
		}
	}

	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hitassert/packages/cases"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>",
	Short: "Validate case files against the case schema",
	Long: `Validate case files for structural errors without evaluating them.

Examples:
  hitassert validate times.yaml
  hitassert validate ./cases/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .yaml or .yml case files found")
	}

	if invalid := validateFiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), files); invalid > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files invalid\n", invalid, len(files))
		os.Exit(exitCodeFor(invalid, 0))
	}

	return nil
}

// validateFiles reports each file and returns how many could not be parsed.
func validateFiles(out, errOut io.Writer, files []string) int {
	invalid := 0
	for _, file := range files {
		f, err := cases.ParseFile(file)
		if err != nil {
			fmt.Fprintf(errOut, "Error in %s: %v\n", file, err)
			invalid++
			continue
		}
		fmt.Fprintf(out, "Valid: %s (%d cases)\n", file, len(f.Cases))
	}
	return invalid
}

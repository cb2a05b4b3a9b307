package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hitassert/packages/output"
)

var (
	diffOutputFlag           string
	diffFailOnRegressionFlag bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <report1.json> <report2.json>",
	Short: "Compare two JSON reports",
	Long: `Compare two JSON reports written with -o json and show which cases
started failing, started passing, changed failure kind, appeared or disappeared.

Examples:
  hitassert diff before.json after.json
  hitassert diff before.json after.json --output json
  hitassert diff before.json after.json --fail-on-regression`,
	Args: cobra.ExactArgs(2),
	RunE: diffCommand,
}

func init() {
	diffCmd.Flags().StringVarP(&diffOutputFlag, "output", "o", "console", "Output format: console, json")
	diffCmd.Flags().BoolVar(&diffFailOnRegressionFlag, "fail-on-regression", false, "Exit non-zero when any case regressed")
}

// DiffResult holds the comparison result
type DiffResult struct {
	File1       string           `json:"file1"`
	File2       string           `json:"file2"`
	RunID1      string           `json:"runId1,omitempty"`
	RunID2      string           `json:"runId2,omitempty"`
	Comparisons []CaseComparison `json:"comparisons"`
	Summary     DiffSummary      `json:"summary"`
}

// CaseComparison represents a comparison between two results of one case
type CaseComparison struct {
	Name         string `json:"name"`
	File         string `json:"file,omitempty"`
	StatusChange string `json:"statusChange"` // "improved", "regressed", "changed", "unchanged", "new", "removed"
	Passed1      bool   `json:"passed1"`
	Passed2      bool   `json:"passed2"`
	Kind1        string `json:"kind1,omitempty"`
	Kind2        string `json:"kind2,omitempty"`
	InFile1      bool   `json:"-"`
	InFile2      bool   `json:"-"`
}

// DiffSummary provides overall statistics
type DiffSummary struct {
	TotalCases   int `json:"totalCases"`
	Improved     int `json:"improved"`
	Regressed    int `json:"regressed"`
	Changed      int `json:"changed"`
	Unchanged    int `json:"unchanged"`
	NewCases     int `json:"newCases"`
	RemovedCases int `json:"removedCases"`
}

func diffCommand(cmd *cobra.Command, args []string) error {
	file1, file2 := args[0], args[1]

	report1, err := loadReport(file1)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file1, err)
	}

	report2, err := loadReport(file2)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file2, err)
	}

	diff := compareReports(file1, file2, report1, report2)

	switch strings.ToLower(diffOutputFlag) {
	case "json":
		err = outputDiffJSON(cmd.OutOrStdout(), diff)
	default:
		err = outputDiffConsole(cmd.OutOrStdout(), diff)
	}
	if err != nil {
		return err
	}

	if diffFailOnRegressionFlag && diff.Summary.Regressed > 0 {
		os.Exit(ExitTestFailure)
	}
	return nil
}

func loadReport(path string) (*output.JSONOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var report output.JSONOutput
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func caseKind(c output.JSONCase) string {
	if c.Assertion == nil {
		return ""
	}
	return c.Assertion.Kind
}

func compareReports(file1, file2 string, report1, report2 *output.JSONOutput) *DiffResult {
	diff := &DiffResult{
		File1:  file1,
		File2:  file2,
		RunID1: report1.RunID,
		RunID2: report2.RunID,
	}

	cases1 := make(map[string]output.JSONCase)
	cases2 := make(map[string]output.JSONCase)
	for _, c := range report1.Cases {
		if !c.Skipped {
			cases1[c.File+"::"+c.Name] = c
		}
	}
	for _, c := range report2.Cases {
		if !c.Skipped {
			cases2[c.File+"::"+c.Name] = c
		}
	}

	allCases := make(map[string]bool)
	for key := range cases1 {
		allCases[key] = true
	}
	for key := range cases2 {
		allCases[key] = true
	}

	keys := make([]string, 0, len(allCases))
	for key := range allCases {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		c1, in1 := cases1[key]
		c2, in2 := cases2[key]

		comp := CaseComparison{
			Name:    getNameFromKey(key),
			File:    getFileFromKey(key),
			InFile1: in1,
			InFile2: in2,
		}
		if in1 {
			comp.Passed1 = c1.Passed
			comp.Kind1 = caseKind(c1)
		}
		if in2 {
			comp.Passed2 = c2.Passed
			comp.Kind2 = caseKind(c2)
		}

		switch {
		case in1 && in2 && comp.Passed1 != comp.Passed2:
			if comp.Passed2 {
				comp.StatusChange = "improved"
				diff.Summary.Improved++
			} else {
				comp.StatusChange = "regressed"
				diff.Summary.Regressed++
			}
		case in1 && in2 && comp.Kind1 != comp.Kind2:
			comp.StatusChange = "changed"
			diff.Summary.Changed++
		case in1 && in2:
			comp.StatusChange = "unchanged"
			diff.Summary.Unchanged++
		case in1:
			comp.StatusChange = "removed"
			diff.Summary.RemovedCases++
		default:
			comp.StatusChange = "new"
			diff.Summary.NewCases++
		}

		diff.Comparisons = append(diff.Comparisons, comp)
		diff.Summary.TotalCases++
	}

	return diff
}

func getNameFromKey(key string) string {
	parts := strings.SplitN(key, "::", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return key
}

func getFileFromKey(key string) string {
	parts := strings.SplitN(key, "::", 2)
	if len(parts) == 2 {
		return parts[0]
	}
	return ""
}

func outputDiffConsole(w io.Writer, diff *DiffResult) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", bold("Report Comparison"))
	fmt.Fprintf(w, "  %s: %s\n", cyan("Report 1"), diff.File1)
	fmt.Fprintf(w, "  %s: %s\n\n", cyan("Report 2"), diff.File2)

	fmt.Fprintf(w, "%s\n", bold("Summary"))
	fmt.Fprintf(w, "  Total Cases:    %d\n", diff.Summary.TotalCases)
	if diff.Summary.Improved > 0 {
		fmt.Fprintf(w, "  Improved:       %s\n", green(fmt.Sprintf("%d", diff.Summary.Improved)))
	}
	if diff.Summary.Regressed > 0 {
		fmt.Fprintf(w, "  Regressed:      %s\n", red(fmt.Sprintf("%d", diff.Summary.Regressed)))
	}
	if diff.Summary.Changed > 0 {
		fmt.Fprintf(w, "  Changed Kind:   %s\n", yellow(fmt.Sprintf("%d", diff.Summary.Changed)))
	}
	if diff.Summary.Unchanged > 0 {
		fmt.Fprintf(w, "  Unchanged:      %d\n", diff.Summary.Unchanged)
	}
	if diff.Summary.NewCases > 0 {
		fmt.Fprintf(w, "  New Cases:      %s\n", cyan(fmt.Sprintf("%d", diff.Summary.NewCases)))
	}
	if diff.Summary.RemovedCases > 0 {
		fmt.Fprintf(w, "  Removed Cases:  %s\n", yellow(fmt.Sprintf("%d", diff.Summary.RemovedCases)))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", bold("Case Details"))
	for _, comp := range diff.Comparisons {
		var statusSymbol string
		var statusColor func(a ...interface{}) string

		switch comp.StatusChange {
		case "improved":
			statusSymbol = "↑"
			statusColor = green
		case "regressed":
			statusSymbol = "↓"
			statusColor = red
		case "changed":
			statusSymbol = "~"
			statusColor = yellow
		case "new":
			statusSymbol = "+"
			statusColor = cyan
		case "removed":
			statusSymbol = "-"
			statusColor = yellow
		default:
			statusSymbol = "="
			statusColor = func(a ...interface{}) string { return fmt.Sprint(a...) }
		}

		switch {
		case comp.InFile1 && comp.InFile2:
			fmt.Fprintf(w, "  %s %s  %s → %s\n", statusColor(statusSymbol), comp.Name,
				outcome(comp.Passed1, comp.Kind1), outcome(comp.Passed2, comp.Kind2))
		case comp.InFile1:
			fmt.Fprintf(w, "  %s %s  (removed)\n", statusColor(statusSymbol), comp.Name)
		default:
			fmt.Fprintf(w, "  %s %s  (new, %s)\n", statusColor(statusSymbol), comp.Name, outcome(comp.Passed2, comp.Kind2))
		}
	}
	fmt.Fprintln(w)

	return nil
}

func outcome(passed bool, kind string) string {
	switch {
	case passed:
		return "passed"
	case kind != "":
		return kind
	default:
		return "failed"
	}
}

func outputDiffJSON(w io.Writer, diff *DiffResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(diff)
}

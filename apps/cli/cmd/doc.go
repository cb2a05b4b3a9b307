// Package cmd implements the hitassert CLI commands using Cobra.
//
// Available commands:
//   - run: Evaluate temporal assertion cases from YAML files
//   - compare: Compare two timestamps from the command line
//   - validate: Check case files against the case schema without evaluating
//   - list: Display all cases defined in files
//   - diff: Compare two JSON reports
//   - init: Create a config file and example cases
//   - version: Show hitassert version information
//
// The CLI supports flags for filtering, output formatting, parallel
// evaluation and watch mode for development workflows.
package cmd

// Package output provides formatters for displaying case results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output tagged with a run ID
//   - JUnit: JUnit XML format for CI integration
//   - TAP: Test Anything Protocol format
//   - HTML: A standalone report page
//
// Each formatter implements the Formatter interface and can optionally
// implement Flushable for formats that accumulate results before output.
package output

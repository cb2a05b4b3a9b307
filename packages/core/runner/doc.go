// Package runner executes hitassert case files.
//
// It provides functionality for:
//   - Running individual case files
//   - Filtering cases by name pattern and tag
//   - Parallel evaluation with configurable concurrency
//   - Stopping at the first failure (bail)
//
// Cases are independent, so parallel mode preserves file order in the
// result while evaluating concurrently.
package runner

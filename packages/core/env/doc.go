// Package env supplies the variables case files interpolate.
//
// Case file values may contain {{name}} placeholders, filled from the file's
// variables block, --var flags and .env files, and {{$NAME}} placeholders,
// filled from the process environment.
package env

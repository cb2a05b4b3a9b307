// Package builtin provides the timestamp functions usable in hitassert case files.
//
// Available functions:
//   - now(): Current time in the registry's location
//   - now(offset): Current time shifted by a Go duration ("+90s", "-1h30m")
//   - today(): Midnight of the current day
//   - unix(seconds): Time from a Unix timestamp
//   - unixMs(milliseconds): Time from a Unix timestamp in milliseconds
//   - date(layout, value): Time parsed with a Go layout
//
// Functions are written as plain calls in case values, e.g. subject: "now(-5m)".
package builtin

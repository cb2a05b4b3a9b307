// Package temporal implements field-masked comparisons of time.Time values.
//
// A value is compared on its own zone-local calendar fields (year, month, day,
// hour, minute, second, nanosecond). A Granularity names the finest field that
// takes part in a comparison; every field below it is ignored:
//
//	temporal.EqualAt(a, b, temporal.Minute) // equal ignoring seconds
//	temporal.EqualAt(a, b, temporal.Second) // equal ignoring nanoseconds
//
// No zone normalization happens before masking. Callers wanting both operands
// in a common zone convert them with In first.
package temporal

// Package assertions evaluates hitassert cases.
//
// Each case resolves its subject and reference to timestamps and runs the
// named check through a recording assert.TimeAssert chain:
//   - Instant checks (equal, notEqual, before, beforeOrEqual, after, afterOrEqual)
//   - Masked checks (equalIgnoringNanos, equalIgnoringSeconds,
//     equalIgnoringMinutes, equalIgnoringHours)
//
// A case marked expectFailure passes only when its check fails.
package assertions

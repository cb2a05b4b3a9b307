// Package matchers exposes the masked time comparisons and optional checks as
// gomega matchers:
//
//	Expect(created).To(matchers.BeEqualIgnoringSeconds(want))
//	Expect(token).To(matchers.BePresent())
//
// Times may be given as time.Time or *time.Time. A nil actual or expected
// value makes Match return an error rather than a plain mismatch.
package matchers

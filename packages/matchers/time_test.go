package matchers_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
	"github.com/abdul-hamid-achik/hitassert/packages/matchers"
	"github.com/abdul-hamid-achik/hitassert/packages/temporal"
)

var _ = Describe("Masked time matchers", func() {
	var ref time.Time

	BeforeEach(func() {
		ref = time.Date(2000, 1, 1, 23, 51, 0, 0, time.UTC)
	})

	Context("ignoring seconds", func() {
		It("should match when only seconds differ", func() {
			Expect(ref).To(matchers.BeEqualIgnoringSeconds(ref.Add(time.Second)))
		})

		It("should not match across a minute boundary", func() {
			Expect(ref).NotTo(matchers.BeEqualIgnoringSeconds(ref.Add(-time.Nanosecond)))
		})

		It("should accept pointers", func() {
			other := ref.Add(30 * time.Second)
			Expect(&ref).To(matchers.BeEqualIgnoringSeconds(&other))
		})

		It("should describe the compared fields", func() {
			m := matchers.BeEqualIgnoringSeconds(ref.Add(time.Minute))
			Expect(m.FailureMessage(ref)).To(Equal(
				"\nExpecting:\n  <2000-01-01T23:51Z>\nto have same year, month, day, hour and minute as:\n  <2000-01-01T23:52Z>\nbut had not."))
			Expect(m.NegatedFailureMessage(ref)).To(ContainSubstring("not to have same year, month, day, hour and minute as:"))
		})
	})

	Context("ignoring nanoseconds", func() {
		It("should match when only the fraction differs", func() {
			base := time.Date(2000, 1, 1, 0, 0, 1, 0, time.UTC)
			Expect(base).To(matchers.BeEqualIgnoringNanos(base.Add(55)))
			Expect(base).NotTo(matchers.BeEqualIgnoringNanos(base.Add(time.Second)))
		})
	})

	Context("coarser granularities", func() {
		It("should compare hours and days", func() {
			Expect(ref).To(matchers.BeEqualIgnoringMinutes(ref.Add(5 * time.Minute)))
			Expect(ref).To(matchers.BeEqualIgnoringHours(ref.Add(-23 * time.Hour)))
			Expect(ref).To(matchers.BeEqualAt(ref, temporal.Nanosecond))
		})
	})

	Context("invalid input", func() {
		It("should error on a nil actual", func() {
			var missing *time.Time
			_, err := matchers.BeEqualIgnoringSeconds(ref).Match(missing)
			Expect(err).To(MatchError(errmsg.ActualIsNull()))
		})

		It("should error on a nil expected value", func() {
			var missing *time.Time
			_, err := matchers.BeEqualIgnoringSeconds(missing).Match(ref)
			Expect(err).To(MatchError("The time.Time to compare actual with should not be null"))
		})

		It("should error on a value that is not a time", func() {
			_, err := matchers.BeEqualIgnoringSeconds(ref).Match("2000-01-01")
			Expect(err).To(HaveOccurred())
		})
	})
})

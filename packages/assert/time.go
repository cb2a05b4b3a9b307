package assert

import (
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
	"github.com/abdul-hamid-achik/hitassert/packages/temporal"
)

// NullTimeParameterMessage is the ArgumentError message for a nil reference time.
const NullTimeParameterMessage = "The time.Time to compare actual with should not be null"

// TimeAssert is the assertion chain over a time.Time.
type TimeAssert struct {
	base
	actual *time.Time
}

// ThatTime starts a chain over actual; a nil actual fails every check.
func ThatTime(t T, actual *time.Time, opts ...Option) *TimeAssert {
	return &TimeAssert{base: newBase(t, opts), actual: actual}
}

// ThatTimeValue starts a chain over a copy of actual.
func ThatTimeValue(t T, actual time.Time, opts ...Option) *TimeAssert {
	return ThatTime(t, &actual, opts...)
}

// As labels the following failure messages with "[description] ".
func (a *TimeAssert) As(format string, args ...any) *TimeAssert {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual and other are the same instant, whatever their zones.
func (a *TimeAssert) IsEqualTo(other *time.Time) *TimeAssert {
	a.helper()
	if actual, ref, ok := a.operands(other); ok && !actual.Equal(ref) {
		a.failWith(errmsg.ShouldBeEqual(actual, ref))
	}
	return a
}

// IsEqualToString parses other as RFC 3339, converts it to actual's location
// and checks both are the same instant.
func (a *TimeAssert) IsEqualToString(other string) *TimeAssert {
	a.helper()
	if a.actual == nil {
		a.failNull()
		return a
	}
	parsed, err := time.Parse(time.RFC3339Nano, other)
	if err != nil {
		a.invalidArgument("other", fmt.Sprintf("cannot parse %q as an RFC 3339 time: %v", other, err))
		return a
	}
	parsed = parsed.In(a.actual.Location())
	return a.IsEqualTo(&parsed)
}

// IsNotEqualTo checks that actual and other are different instants.
func (a *TimeAssert) IsNotEqualTo(other *time.Time) *TimeAssert {
	a.helper()
	if actual, ref, ok := a.operands(other); ok && actual.Equal(ref) {
		a.failWith(errmsg.ShouldNotBeEqual(actual, ref))
	}
	return a
}

func (a *TimeAssert) IsBefore(other *time.Time) *TimeAssert {
	a.helper()
	if actual, ref, ok := a.operands(other); ok && !actual.Before(ref) {
		a.failWith(errmsg.ShouldBeBefore(actual, ref))
	}
	return a
}

func (a *TimeAssert) IsBeforeOrEqualTo(other *time.Time) *TimeAssert {
	a.helper()
	if actual, ref, ok := a.operands(other); ok && actual.After(ref) {
		a.failWith(errmsg.ShouldBeBeforeOrEqualTo(actual, ref))
	}
	return a
}

func (a *TimeAssert) IsAfter(other *time.Time) *TimeAssert {
	a.helper()
	if actual, ref, ok := a.operands(other); ok && !actual.After(ref) {
		a.failWith(errmsg.ShouldBeAfter(actual, ref))
	}
	return a
}

func (a *TimeAssert) IsAfterOrEqualTo(other *time.Time) *TimeAssert {
	a.helper()
	if actual, ref, ok := a.operands(other); ok && actual.Before(ref) {
		a.failWith(errmsg.ShouldBeAfterOrEqualTo(actual, ref))
	}
	return a
}

// IsEqualToIgnoringNanos compares year, month, day, hour, minute and second.
//
// 00:00:01 and 00:00:00.999999999 are one nanosecond apart yet fail: the
// second fields differ.
func (a *TimeAssert) IsEqualToIgnoringNanos(other *time.Time) *TimeAssert {
	a.helper()
	return a.IsEqualAtGranularity(other, temporal.Second)
}

// IsEqualToIgnoringSeconds compares year, month, day, hour and minute.
//
// 23:51:00 and 23:50:59.999999999 are one nanosecond apart yet fail: the
// minute fields differ.
func (a *TimeAssert) IsEqualToIgnoringSeconds(other *time.Time) *TimeAssert {
	a.helper()
	return a.IsEqualAtGranularity(other, temporal.Minute)
}

// IsEqualToIgnoringMinutes compares year, month, day and hour.
func (a *TimeAssert) IsEqualToIgnoringMinutes(other *time.Time) *TimeAssert {
	a.helper()
	return a.IsEqualAtGranularity(other, temporal.Hour)
}

// IsEqualToIgnoringHours compares year, month and day.
func (a *TimeAssert) IsEqualToIgnoringHours(other *time.Time) *TimeAssert {
	a.helper()
	return a.IsEqualAtGranularity(other, temporal.Day)
}

// IsEqualAtGranularity compares the zone-local fields of actual and other down
// to g. Each value keeps its own location unless the chain was configured
// WithCompareLocation. Failure messages show both values at full precision.
func (a *TimeAssert) IsEqualAtGranularity(other *time.Time, g temporal.Granularity) *TimeAssert {
	a.helper()
	actual, ref, ok := a.operands(other)
	if !ok {
		return a
	}
	if !temporal.EqualAtIn(actual, ref, g, a.cfg.CompareLocation) {
		a.failWith(errmsg.ShouldBeEqualAt(actual, ref, g))
	}
	return a
}

// operands checks the preconditions shared by every comparison: actual first,
// then the reference.
func (a *TimeAssert) operands(other *time.Time) (time.Time, time.Time, bool) {
	a.helper()
	if a.actual == nil {
		a.failNull()
		return time.Time{}, time.Time{}, false
	}
	if other == nil {
		a.invalidArgument("other", NullTimeParameterMessage)
		return time.Time{}, time.Time{}, false
	}
	return *a.actual, *other, true
}

package matchers

import (
	"errors"
	"fmt"
	"time"

	"github.com/onsi/gomega/types"

	"github.com/abdul-hamid-achik/hitassert/packages/assert"
	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
	"github.com/abdul-hamid-achik/hitassert/packages/temporal"
)

var errNotATime = errors.New("expected a time.Time or *time.Time")

type maskedTimeMatcher struct {
	expected    any
	granularity temporal.Granularity
	repr        errmsg.Representation
}

// BeEqualAt succeeds when actual and expected share every zone-local field
// down to g.
func BeEqualAt(expected any, g temporal.Granularity) types.GomegaMatcher {
	return &maskedTimeMatcher{expected: expected, granularity: g, repr: errmsg.StandardRepresentation{}}
}

func BeEqualIgnoringNanos(expected any) types.GomegaMatcher {
	return BeEqualAt(expected, temporal.Second)
}

func BeEqualIgnoringSeconds(expected any) types.GomegaMatcher {
	return BeEqualAt(expected, temporal.Minute)
}

func BeEqualIgnoringMinutes(expected any) types.GomegaMatcher {
	return BeEqualAt(expected, temporal.Hour)
}

func BeEqualIgnoringHours(expected any) types.GomegaMatcher {
	return BeEqualAt(expected, temporal.Day)
}

func (m *maskedTimeMatcher) Match(actual any) (bool, error) {
	act, present, err := toTime(actual)
	if err != nil {
		return false, fmt.Errorf("actual: %w, got %T", err, actual)
	}
	if !present {
		return false, errors.New(errmsg.ActualIsNull())
	}
	exp, present, err := toTime(m.expected)
	if err != nil {
		return false, fmt.Errorf("expected: %w, got %T", err, m.expected)
	}
	if !present {
		return false, errors.New(assert.NullTimeParameterMessage)
	}
	return temporal.EqualAt(act, exp, m.granularity), nil
}

func (m *maskedTimeMatcher) FailureMessage(actual any) string {
	return errmsg.ShouldBeEqualAt(actual, m.expected, m.granularity).Create("", m.repr)
}

func (m *maskedTimeMatcher) NegatedFailureMessage(actual any) string {
	return errmsg.NewFactory(
		"\nExpecting:\n  <%s>\nnot to have same "+m.granularity.Description()+" as:\n  <%s>\nbut had.",
		actual, m.expected,
	).Create("", m.repr)
}

func toTime(v any) (time.Time, bool, error) {
	switch t := v.(type) {
	case time.Time:
		return t, true, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, false, nil
		}
		return *t, true, nil
	case nil:
		return time.Time{}, false, nil
	}
	return time.Time{}, false, errNotATime
}

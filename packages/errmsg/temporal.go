package errmsg

import (
	"github.com/abdul-hamid-achik/hitassert/packages/temporal"
)

// ShouldBeEqualAt reports that actual and other differ in a field compared at g.
func ShouldBeEqualAt(actual, other any, g temporal.Granularity) Factory {
	return NewFactory(
		"\nExpecting:\n  <%s>\nto have same "+g.Description()+" as:\n  <%s>\nbut had not.",
		actual, other,
	)
}

func ShouldBeEqualIgnoringNanos(actual, other any) Factory {
	return ShouldBeEqualAt(actual, other, temporal.Second)
}

func ShouldBeEqualIgnoringSeconds(actual, other any) Factory {
	return ShouldBeEqualAt(actual, other, temporal.Minute)
}

func ShouldBeEqualIgnoringMinutes(actual, other any) Factory {
	return ShouldBeEqualAt(actual, other, temporal.Hour)
}

func ShouldBeEqualIgnoringHours(actual, other any) Factory {
	return ShouldBeEqualAt(actual, other, temporal.Day)
}

func ShouldBeEqual(actual, expected any) Factory {
	return NewFactory("\nExpecting:\n  <%s>\nto be equal to:\n  <%s>\nbut was not.", actual, expected)
}

func ShouldNotBeEqual(actual, other any) Factory {
	return NewFactory("\nExpecting:\n  <%s>\nnot to be equal to:\n  <%s>", actual, other)
}

func ShouldBeBefore(actual, other any) Factory {
	return NewFactory("\nExpecting:\n  <%s>\nto be strictly before:\n  <%s>", actual, other)
}

func ShouldBeBeforeOrEqualTo(actual, other any) Factory {
	return NewFactory("\nExpecting:\n  <%s>\nto be before or equals to:\n  <%s>", actual, other)
}

func ShouldBeAfter(actual, other any) Factory {
	return NewFactory("\nExpecting:\n  <%s>\nto be strictly after:\n  <%s>", actual, other)
}

func ShouldBeAfterOrEqualTo(actual, other any) Factory {
	return NewFactory("\nExpecting:\n  <%s>\nto be after or equals to:\n  <%s>", actual, other)
}

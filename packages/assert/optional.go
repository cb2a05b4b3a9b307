package assert

import (
	testify "github.com/stretchr/testify/assert"

	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
	"github.com/abdul-hamid-achik/hitassert/packages/optional"
)

// OptionalAssert is the assertion chain over an optional.Optional.
type OptionalAssert[V any] struct {
	base
	actual *optional.Optional[V]
}

// ThatOptional starts a chain over actual; a nil actual fails every check.
func ThatOptional[V any](t T, actual *optional.Optional[V], opts ...Option) *OptionalAssert[V] {
	return &OptionalAssert[V]{base: newBase(t, opts), actual: actual}
}

// ThatOptionalValue starts a chain over a copy of actual.
func ThatOptionalValue[V any](t T, actual optional.Optional[V], opts ...Option) *OptionalAssert[V] {
	return ThatOptional(t, &actual, opts...)
}

func (a *OptionalAssert[V]) As(format string, args ...any) *OptionalAssert[V] {
	a.describe(format, args...)
	return a
}

func (a *OptionalAssert[V]) IsPresent() *OptionalAssert[V] {
	a.helper()
	if a.actual == nil {
		a.failNull()
		return a
	}
	if a.actual.IsEmpty() {
		a.failWith(errmsg.ShouldBePresent())
	}
	return a
}

func (a *OptionalAssert[V]) IsEmpty() *OptionalAssert[V] {
	a.helper()
	if a.actual == nil {
		a.failNull()
		return a
	}
	if v, ok := a.actual.Get(); ok {
		a.failWith(errmsg.ShouldBeEmpty(v))
	}
	return a
}

// Contains checks that a value is present and equal to expected, using
// testify's ObjectsAreEqual.
func (a *OptionalAssert[V]) Contains(expected V) *OptionalAssert[V] {
	a.helper()
	if a.actual == nil {
		a.failNull()
		return a
	}
	v, ok := a.actual.Get()
	switch {
	case !ok:
		a.failWith(errmsg.ShouldContainButWasEmpty(expected))
	case !testify.ObjectsAreEqual(expected, v):
		a.failWith(errmsg.ShouldContain(v, expected))
	}
	return a
}

package matchers

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"

	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
)

// optionalLike is satisfied by optional.Optional of any type, and pointers to it.
type optionalLike interface {
	IsPresent() bool
	Value() any
}

type presenceMatcher struct {
	wantPresent bool
}

// BePresent succeeds when the optional holds a value.
func BePresent() types.GomegaMatcher {
	return &presenceMatcher{wantPresent: true}
}

// BeEmptyOptional succeeds when the optional holds nothing.
func BeEmptyOptional() types.GomegaMatcher {
	return &presenceMatcher{wantPresent: false}
}

func (m *presenceMatcher) Match(actual any) (bool, error) {
	if actual == nil || isNil(actual) {
		return false, errors.New(errmsg.ActualIsNull())
	}
	o, ok := actual.(optionalLike)
	if !ok {
		return false, fmt.Errorf("expected an optional.Optional, got %T", actual)
	}
	return o.IsPresent() == m.wantPresent, nil
}

func (m *presenceMatcher) FailureMessage(actual any) string {
	if m.wantPresent {
		return errmsg.ShouldBePresent().Create("", errmsg.StandardRepresentation{})
	}
	return errmsg.ShouldBeEmpty(valueOf(actual)).Create("", errmsg.StandardRepresentation{})
}

func (m *presenceMatcher) NegatedFailureMessage(actual any) string {
	if m.wantPresent {
		return errmsg.ShouldBeEmpty(valueOf(actual)).Create("", errmsg.StandardRepresentation{})
	}
	return errmsg.ShouldBePresent().Create("", errmsg.StandardRepresentation{})
}

func valueOf(actual any) any {
	if o, ok := actual.(optionalLike); ok && !isNil(actual) {
		return o.Value()
	}
	return nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

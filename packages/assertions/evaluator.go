package assertions

import (
	"errors"
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/hitassert/packages/assert"
	"github.com/abdul-hamid-achik/hitassert/packages/cases"
)

// Result kinds, beyond the assert.Kind strings.
const (
	KindInvalidArgument = "invalid-argument"
	KindError           = "error"
)

type Result struct {
	Passed   bool
	Message  string
	Expected any
	Actual   any
	Subject  string
	Operator string
	// Kind is empty when the check held, otherwise "failure", "null-subject",
	// "invalid-argument" or "error" (the case could not be evaluated).
	Kind string
}

type Evaluator struct {
	resolver *cases.Resolver
	opts     []assert.Option
}

// EvaluatorOption is a functional option for configuring an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithAssertOptions configures every assertion chain the evaluator starts.
func WithAssertOptions(opts ...assert.Option) EvaluatorOption {
	return func(e *Evaluator) {
		e.opts = append(e.opts, opts...)
	}
}

func NewEvaluator(resolver *cases.Resolver, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{resolver: resolver}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// recorder is a test handle that drops everything; failures are read back
// from the soft collector instead.
type recorder struct{}

func (recorder) Errorf(string, ...any) {}
func (recorder) FailNow()              {}

func (e *Evaluator) Evaluate(c *cases.Case) *Result {
	result := &Result{
		Subject:  c.Subject.String(),
		Operator: string(c.Check),
	}

	actual, err := e.resolver.Resolve(c.Subject)
	if err != nil {
		return result.errored(fmt.Errorf("subject: %w", err))
	}
	expected, err := e.resolver.Resolve(c.Reference)
	if err != nil {
		return result.errored(fmt.Errorf("reference: %w", err))
	}
	result.Actual = value(actual)
	result.Expected = value(expected)

	soft := assert.NewSoft(recorder{}, e.opts...)
	chain := soft.TimePtr(actual)
	if c.Description != "" {
		chain.As("%s", c.Description)
	}
	if err := compare(chain, c.Check, expected); err != nil {
		return result.errored(err)
	}

	var failure error
	if errs := soft.Errors(); len(errs) > 0 {
		failure = errs[0]
	}
	result.Kind = kindOf(failure)
	switch {
	case c.ExpectFailure && failure == nil:
		result.Passed = false
		result.Message = fmt.Sprintf("expected %s to fail, but it held", c.Check)
	case c.ExpectFailure:
		result.Passed = true
		result.Message = failure.Error()
	case failure != nil:
		result.Passed = false
		result.Message = failure.Error()
	default:
		result.Passed = true
	}
	return result
}

// EvaluateAll evaluates every case in order.
func (e *Evaluator) EvaluateAll(all []*cases.Case) []*Result {
	results := make([]*Result, len(all))
	for i, c := range all {
		results[i] = e.Evaluate(c)
	}
	return results
}

func compare(chain *assert.TimeAssert, check cases.Check, other *time.Time) error {
	switch check {
	case cases.CheckEqual:
		chain.IsEqualTo(other)
	case cases.CheckNotEqual:
		chain.IsNotEqualTo(other)
	case cases.CheckBefore:
		chain.IsBefore(other)
	case cases.CheckBeforeOrEqual:
		chain.IsBeforeOrEqualTo(other)
	case cases.CheckAfter:
		chain.IsAfter(other)
	case cases.CheckAfterOrEqual:
		chain.IsAfterOrEqualTo(other)
	case cases.CheckEqualIgnoringNanos:
		chain.IsEqualToIgnoringNanos(other)
	case cases.CheckEqualIgnoringSeconds:
		chain.IsEqualToIgnoringSeconds(other)
	case cases.CheckEqualIgnoringMinutes:
		chain.IsEqualToIgnoringMinutes(other)
	case cases.CheckEqualIgnoringHours:
		chain.IsEqualToIgnoringHours(other)
	default:
		return fmt.Errorf("unknown check: %s", check)
	}
	return nil
}

func kindOf(err error) string {
	if err == nil {
		return ""
	}
	var argErr *assert.ArgumentError
	if errors.As(err, &argErr) {
		return KindInvalidArgument
	}
	var assertErr *assert.AssertionError
	if errors.As(err, &assertErr) {
		return assertErr.Kind.String()
	}
	return KindError
}

func (r *Result) errored(err error) *Result {
	r.Passed = false
	r.Kind = KindError
	r.Message = err.Error()
	return r
}

func value(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

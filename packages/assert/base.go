package assert

import (
	"github.com/hashicorp/go-multierror"
	testify "github.com/stretchr/testify/assert"

	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
)

//go:generate mockgen -source=base.go -destination=mock_t_test.go -package=assert

// T is what an assertion chain needs from a test handle (*testing.T satisfies it).
type T interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

// base carries the state shared by every assertion chain.
type base struct {
	t      T
	cfg    Config
	desc   errmsg.Description
	errs   []error
	helper func()
}

func newBase(t T, opts []Option) base {
	b := base{t: t, cfg: newConfig(opts), helper: func() {}}
	if h, ok := t.(tHelper); ok {
		b.helper = h.Helper
	}
	return b
}

// Config returns the configuration the chain was built with.
func (b *base) Config() Config {
	return b.cfg
}

// Failed reports whether any check of the chain failed.
func (b *base) Failed() bool {
	return len(b.errs) > 0
}

// Errors returns every failure recorded on the chain, in order.
func (b *base) Errors() []error {
	return append([]error(nil), b.errs...)
}

// Err returns nil when every check passed, the failure itself when exactly one
// failed, and all failures combined otherwise.
func (b *base) Err() error {
	switch len(b.errs) {
	case 0:
		return nil
	case 1:
		return b.errs[0]
	}
	return multierror.Append(nil, b.errs...)
}

func (b *base) describe(format string, args ...any) {
	b.desc = errmsg.NewDescription(format, args...)
}

func (b *base) failWith(f errmsg.Factory) {
	b.helper()
	b.report(&AssertionError{Kind: KindFailure, Message: f.Create(b.desc, b.cfg.Representation)})
}

func (b *base) failNull() {
	b.helper()
	b.report(&AssertionError{Kind: KindNullSubject, Message: errmsg.ShouldNotBeNull().Create(b.desc, b.cfg.Representation)})
}

func (b *base) invalidArgument(param, message string) {
	b.helper()
	b.report(&ArgumentError{Param: param, Message: message})
}

func (b *base) report(err error) {
	b.helper()
	b.errs = append(b.errs, err)
	if b.cfg.sink != nil {
		b.cfg.sink.add(err)
		return
	}
	testify.Fail(b.t, err.Error())
	if b.cfg.FailFast {
		b.t.FailNow()
	}
}

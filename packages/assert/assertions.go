package assert

import (
	"time"

	testify "github.com/stretchr/testify/assert"
)

// Assertions binds a test handle and a configuration once. Every testify
// assertion is available through the embedded *testify.Assertions; the
// chains of this package start from Time and TimePtr.
//
//	a := assert.New(t, assert.WithFailFast())
//	a.Equal(200, status)
//	a.Time(created).IsEqualToIgnoringSeconds(&want)
type Assertions struct {
	*testify.Assertions
	t    T
	opts []Option
}

// New returns an Assertions reporting to t.
func New(t T, opts ...Option) *Assertions {
	return &Assertions{
		Assertions: testify.New(t),
		t:          t,
		opts:       opts,
	}
}

// Time starts a TimeAssert over actual with the bound configuration.
func (a *Assertions) Time(actual time.Time) *TimeAssert {
	return ThatTimeValue(a.t, actual, a.opts...)
}

// TimePtr starts a TimeAssert over a possibly nil actual.
func (a *Assertions) TimePtr(actual *time.Time) *TimeAssert {
	return ThatTime(a.t, actual, a.opts...)
}

// Options returns the options bound to a, for use with the generic entry
// points such as ThatOptional.
func (a *Assertions) Options() []Option {
	return append([]Option(nil), a.opts...)
}

// Config returns the configuration chains started from a will use.
func (a *Assertions) Config() Config {
	return newConfig(a.opts)
}

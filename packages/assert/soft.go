package assert

import (
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	testify "github.com/stretchr/testify/assert"
)

type collector struct {
	mu  sync.Mutex
	err *multierror.Error
}

func (c *collector) add(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = multierror.Append(c.err, err)
}

func (c *collector) errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return nil
	}
	return append([]error(nil), c.err.Errors...)
}

// Soft gathers the failures of every chain started from it instead of
// reporting them one by one. AssertAll reports what was gathered.
//
//	soft := assert.NewSoft(t)
//	soft.Time(start).IsBefore(&end)
//	assert.ThatOptionalValue(t, id, soft.Collect()).IsPresent()
//	soft.AssertAll()
type Soft struct {
	t    T
	opts []Option
	sink *collector
}

func NewSoft(t T, opts ...Option) *Soft {
	return &Soft{t: t, opts: opts, sink: &collector{}}
}

// Collect routes the failures of a chain to s. It is applied last, so FailFast
// given elsewhere has no effect on collected chains.
func (s *Soft) Collect() Option {
	return func(c *Config) {
		c.sink = s.sink
	}
}

func (s *Soft) options() []Option {
	return append(append([]Option(nil), s.opts...), s.Collect())
}

func (s *Soft) Time(actual time.Time) *TimeAssert {
	return ThatTimeValue(s.t, actual, s.options()...)
}

func (s *Soft) TimePtr(actual *time.Time) *TimeAssert {
	return ThatTime(s.t, actual, s.options()...)
}

// Errors returns every gathered failure, in order.
func (s *Soft) Errors() []error {
	return s.sink.errors()
}

// Err returns the gathered failures combined, or nil.
func (s *Soft) Err() error {
	s.sink.mu.Lock()
	defer s.sink.mu.Unlock()
	return s.sink.err.ErrorOrNil()
}

// AssertAll reports every gathered failure in a single message and returns
// whether there were none.
func (s *Soft) AssertAll() bool {
	if h, ok := s.t.(tHelper); ok {
		h.Helper()
	}
	err := s.Err()
	if err == nil {
		return true
	}
	testify.Fail(s.t, err.Error())
	return false
}

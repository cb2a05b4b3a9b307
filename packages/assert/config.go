package assert

import (
	"time"

	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
)

// Config controls how a single assertion chain renders and reports failures.
type Config struct {
	// Representation renders values inside failure messages.
	Representation errmsg.Representation
	// FailFast calls FailNow on the test handle after the first reported failure.
	FailFast bool
	// CompareLocation, when set, converts both operands of a masked time
	// comparison to this location before their fields are compared.
	CompareLocation *time.Location

	sink *collector
}

// Option configures a Config.
type Option func(*Config)

// WithFailFast stops the test at the first failure.
func WithFailFast() Option {
	return func(c *Config) {
		c.FailFast = true
	}
}

// WithRepresentation replaces the value renderer used in failure messages.
func WithRepresentation(r errmsg.Representation) Option {
	return func(c *Config) {
		c.Representation = r
	}
}

// WithTimeLayout renders times with a Go layout instead of minimal ISO-8601.
func WithTimeLayout(layout string) Option {
	return func(c *Config) {
		c.Representation = errmsg.StandardRepresentation{TimeLayout: layout}
	}
}

// WithCompareLocation normalizes both operands of masked comparisons to loc.
func WithCompareLocation(loc *time.Location) Option {
	return func(c *Config) {
		c.CompareLocation = loc
	}
}

// WithConfig copies every exported field of cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		c.Representation = cfg.Representation
		c.FailFast = cfg.FailFast
		c.CompareLocation = cfg.CompareLocation
	}
}

func newConfig(opts []Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Representation == nil {
		cfg.Representation = errmsg.StandardRepresentation{}
	}
	return cfg
}

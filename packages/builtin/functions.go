package builtin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Func evaluates a builtin call with its already split arguments.
type Func func(r *Registry, args []string) (time.Time, error)

// Clock returns the current time.
type Clock func() time.Time

type Registry struct {
	funcs    map[string]Func
	clock    Clock
	location *time.Location
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now, mostly for tests.
func WithClock(c Clock) Option {
	return func(r *Registry) {
		r.clock = c
	}
}

// WithLocation sets the location of now(), today() and the unix functions,
// and of date() layouts without a zone. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		if loc != nil {
			r.location = loc
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs:    make(map[string]Func),
		clock:    time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.funcs["now"] = funcNow
	r.funcs["today"] = funcToday
	r.funcs["unix"] = funcUnix
	r.funcs["unixMs"] = funcUnixMs
	r.funcs["date"] = funcDate
}

func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Location returns the location the registry evaluates in.
func (r *Registry) Location() *time.Location {
	return r.location
}

var funcCallPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// Call evaluates expr when it is a call to a registered function.
// The boolean is false when expr is not such a call.
func (r *Registry) Call(expr string) (time.Time, bool, error) {
	matches := funcCallPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if matches == nil {
		return time.Time{}, false, nil
	}

	name := matches[1]
	argsStr := matches[2]

	fn, ok := r.funcs[name]
	if !ok {
		return time.Time{}, false, nil
	}

	var args []string
	if argsStr != "" {
		args = parseArgs(argsStr)
	}

	t, err := fn(r, args)
	if err != nil {
		return time.Time{}, true, fmt.Errorf("%s(): %w", name, err)
	}
	return t, true, nil
}

func parseArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !inQuote && (ch == '"' || ch == '\'') {
			inQuote = true
			quoteChar = ch
		} else if inQuote && ch == quoteChar {
			inQuote = false
			quoteChar = 0
		} else if !inQuote && ch == ',' {
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}

	return args
}

func (r *Registry) now() time.Time {
	return r.clock().In(r.location)
}

func funcNow(r *Registry, args []string) (time.Time, error) {
	now := r.now()
	if len(args) == 0 || args[0] == "" {
		return now, nil
	}
	offset, err := time.ParseDuration(strings.TrimPrefix(args[0], "+"))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid offset %q: %w", args[0], err)
	}
	return now.Add(offset), nil
}

func funcToday(r *Registry, _ []string) (time.Time, error) {
	y, m, d := r.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.location), nil
}

func funcUnix(r *Registry, args []string) (time.Time, error) {
	n, err := intArg(args)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0).In(r.location), nil
}

func funcUnixMs(r *Registry, args []string) (time.Time, error) {
	n, err := intArg(args)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(n).In(r.location), nil
}

func funcDate(r *Registry, args []string) (time.Time, error) {
	if len(args) < 2 {
		return time.Time{}, fmt.Errorf("expected (layout, value), got %d arguments", len(args))
	}
	return time.ParseInLocation(args[0], args[1], r.location)
}

func intArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing argument")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %q is not a valid integer", args[0])
	}
	return n, nil
}

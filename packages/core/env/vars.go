package env

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Vars holds named values for {{name}} placeholders. It is safe for
// concurrent use.
type Vars struct {
	mu        sync.RWMutex
	values    map[string]string
	lookupEnv func(string) (string, bool)
}

func NewVars() *Vars {
	return &Vars{
		values:    make(map[string]string),
		lookupEnv: os.LookupEnv,
	}
}

// WithLookupEnv replaces os.LookupEnv for {{$NAME}} placeholders.
func (v *Vars) WithLookupEnv(fn func(string) (string, bool)) *Vars {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lookupEnv = fn
	return v
}

func (v *Vars) Set(name, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[name] = value
}

// SetAll copies values in, overriding existing names.
func (v *Vars) SetAll(values map[string]string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for k, val := range values {
		v.values[k] = val
	}
}

func (v *Vars) Get(name string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.values[name]
	return val, ok
}

func (v *Vars) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.values)
}

func (v *Vars) Clone() *Vars {
	v.mu.RLock()
	defer v.mu.RUnlock()
	clone := &Vars{
		values:    make(map[string]string, len(v.values)),
		lookupEnv: v.lookupEnv,
	}
	for k, val := range v.values {
		clone.values[k] = val
	}
	return clone
}

// Expand replaces every placeholder in input. Placeholders that cannot be
// resolved are all reported in the returned error.
func (v *Vars) Expand(input string) (string, error) {
	if !strings.Contains(input, "{{") {
		return input, nil
	}

	var result *multierror.Error
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-2])

		if name, ok := strings.CutPrefix(expr, "$"); ok {
			if val, found := v.lookupEnv(name); found {
				return val
			}
			result = multierror.Append(result, fmt.Errorf("unresolved environment variable $%s", name))
			return match
		}

		if val, ok := v.values[expr]; ok {
			return val
		}
		result = multierror.Append(result, fmt.Errorf("unresolved variable %s", expr))
		return match
	})

	return out, result.ErrorOrNil()
}

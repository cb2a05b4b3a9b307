package cases

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/abdul-hamid-achik/hitassert/packages/builtin"
	"github.com/abdul-hamid-achik/hitassert/packages/core/env"
)

// Value is an unresolved timestamp from a case file. The zero Value is null.
type Value struct {
	Literal string
	File    string
	Path    string
}

// UnmarshalYAML accepts a scalar or a {file, path} mapping. yaml.v3 never
// calls it for null nodes, which therefore decode to the zero Value.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var literal string
	if err := unmarshal(&literal); err == nil {
		*v = Value{Literal: literal}
		return nil
	}
	var ref struct {
		File string `yaml:"file"`
		Path string `yaml:"path"`
	}
	if err := unmarshal(&ref); err != nil {
		return fmt.Errorf("value must be a timestamp, an expression, null or {file, path}: %w", err)
	}
	*v = Value{File: ref.File, Path: ref.Path}
	return nil
}

func (v Value) IsNull() bool {
	if v.File != "" {
		return false
	}
	return v.Literal == "" || v.Literal == "null" || v.Literal == "~"
}

func (v Value) String() string {
	switch {
	case v.File != "":
		return fmt.Sprintf("%s#%s", v.File, v.Path)
	case v.IsNull():
		return "null"
	default:
		return v.Literal
	}
}

// zoneLessLayouts are tried, in order, for literals without an offset.
var zoneLessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp reads s as RFC 3339 or, failing that, as a zone-less
// timestamp in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range zoneLessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// Resolver turns Values into timestamps.
type Resolver struct {
	baseDir  string
	registry *builtin.Registry
	vars     *env.Vars

	mu   sync.Mutex
	docs map[string][]byte
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithVars expands {{name}} and {{$NAME}} placeholders in literals and
// file references before they are resolved.
func WithVars(vars *env.Vars) ResolverOption {
	return func(r *Resolver) {
		r.vars = vars
	}
}

// NewResolver resolves file references against baseDir and expressions
// through registry. Zone-less literals are read in the registry's location.
func NewResolver(baseDir string, registry *builtin.Registry, opts ...ResolverOption) *Resolver {
	if registry == nil {
		registry = builtin.NewRegistry()
	}
	r := &Resolver{
		baseDir:  baseDir,
		registry: registry,
		docs:     make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns nil for a null value.
func (r *Resolver) Resolve(v Value) (*time.Time, error) {
	v, err := r.expand(v)
	if err != nil {
		return nil, err
	}
	if v.File != "" {
		return r.extract(v.File, v.Path)
	}
	if v.IsNull() {
		return nil, nil
	}
	t, err := r.literal(v.Literal)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Resolver) expand(v Value) (Value, error) {
	if r.vars == nil {
		return v, nil
	}
	var err error
	if v.Literal, err = r.vars.Expand(v.Literal); err != nil {
		return v, err
	}
	if v.File, err = r.vars.Expand(v.File); err != nil {
		return v, err
	}
	if v.Path, err = r.vars.Expand(v.Path); err != nil {
		return v, err
	}
	return v, nil
}

func (r *Resolver) literal(s string) (time.Time, error) {
	t, ok, err := r.registry.Call(s)
	if ok {
		return t, err
	}
	return ParseTimestamp(s, r.registry.Location())
}

func (r *Resolver) extract(file, path string) (*time.Time, error) {
	data, err := r.load(file)
	if err != nil {
		return nil, err
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("path %q not found in %s", path, file)
	}

	switch result.Type {
	case gjson.Null:
		return nil, nil
	case gjson.Number:
		t := fromUnix(result.Float()).In(r.registry.Location())
		return &t, nil
	case gjson.String:
		// Payload data is never evaluated as an expression.
		t, err := ParseTimestamp(result.String(), r.registry.Location())
		if err != nil {
			return nil, fmt.Errorf("%s#%s: %w", file, path, err)
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("%s#%s: expected a string or number, got %s", file, path, result.Type)
	}
}

func fromUnix(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9)))
}

func (r *Resolver) load(file string) ([]byte, error) {
	path := file
	if !filepath.IsAbs(path) && r.baseDir != "" {
		path = filepath.Join(r.baseDir, path)
	}
	if err := validatePathWithinBase(path, r.baseDir); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if data, ok := r.docs[path]; ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s is not valid JSON", file)
	}
	r.docs[path] = data
	return data, nil
}

// validatePathWithinBase keeps file references inside the case file's directory.
func validatePathWithinBase(path, baseDir string) error {
	if baseDir == "" {
		return nil
	}

	cleanBase, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %w", err)
	}
	cleanPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if !strings.HasPrefix(cleanPath, cleanBase+string(filepath.Separator)) && cleanPath != cleanBase {
		return fmt.Errorf("path traversal detected: %s is outside allowed directory %s", path, baseDir)
	}
	return nil
}

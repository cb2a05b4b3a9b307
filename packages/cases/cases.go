package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Check names the comparison a case performs.
type Check string

const (
	CheckEqual                Check = "equal"
	CheckNotEqual             Check = "notEqual"
	CheckBefore               Check = "before"
	CheckBeforeOrEqual        Check = "beforeOrEqual"
	CheckAfter                Check = "after"
	CheckAfterOrEqual         Check = "afterOrEqual"
	CheckEqualIgnoringNanos   Check = "equalIgnoringNanos"
	CheckEqualIgnoringSeconds Check = "equalIgnoringSeconds"
	CheckEqualIgnoringMinutes Check = "equalIgnoringMinutes"
	CheckEqualIgnoringHours   Check = "equalIgnoringHours"
)

// Checks lists every supported check, in documentation order.
var Checks = []Check{
	CheckEqual,
	CheckNotEqual,
	CheckBefore,
	CheckBeforeOrEqual,
	CheckAfter,
	CheckAfterOrEqual,
	CheckEqualIgnoringNanos,
	CheckEqualIgnoringSeconds,
	CheckEqualIgnoringMinutes,
	CheckEqualIgnoringHours,
}

func (c Check) Valid() bool {
	for _, known := range Checks {
		if c == known {
			return true
		}
	}
	return false
}

// File is a parsed case file.
type File struct {
	Path      string            `yaml:"-"`
	Location  string            `yaml:"location,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty"`
	Cases     []*Case           `yaml:"cases"`
	loc       *time.Location    `yaml:"-"`
}

// Case is one temporal assertion.
type Case struct {
	Name          string   `yaml:"name"`
	Subject       Value    `yaml:"subject"`
	Reference     Value    `yaml:"reference"`
	Check         Check    `yaml:"check"`
	Description   string   `yaml:"description,omitempty"`
	ExpectFailure bool     `yaml:"expectFailure,omitempty"`
	Tags          []string `yaml:"tags,omitempty"`
	Skip          string   `yaml:"skip,omitempty"`
}

// HasTag reports whether the case carries any of tags.
func (c *Case) HasTag(tags ...string) bool {
	for _, want := range tags {
		for _, have := range c.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Dir returns the directory relative file values are resolved against.
func (f *File) Dir() string {
	return filepath.Dir(f.Path)
}

// Loc returns the location zone-less timestamps are read in, falling back
// to fallback (or UTC) when the file names none.
func (f *File) Loc(fallback *time.Location) *time.Location {
	if f.loc != nil {
		return f.loc
	}
	if fallback != nil {
		return fallback
	}
	return time.UTC
}

// ParseFile reads, validates and decodes a case file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	f, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// ParseBytes validates and decodes case file content.
func ParseBytes(data []byte) (*File, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding cases: %w", err)
	}

	if f.Location != "" {
		loc, err := time.LoadLocation(f.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid location %q: %w", f.Location, err)
		}
		f.loc = loc
	}

	seen := make(map[string]bool, len(f.Cases))
	for i, c := range f.Cases {
		if !c.Check.Valid() {
			return nil, fmt.Errorf("case %d (%s): unknown check %q", i+1, c.Name, c.Check)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("case %d: duplicate name %q", i+1, c.Name)
		}
		seen[c.Name] = true
	}
	return &f, nil
}

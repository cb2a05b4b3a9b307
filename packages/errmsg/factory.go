package errmsg

import (
	"fmt"
	"strings"
)

// Factory creates the message of a failed assertion.
type Factory interface {
	Create(desc Description, repr Representation) string
}

// Description is the optional label of an assertion, printed as "[label] ".
type Description string

// NewDescription formats a description the way fmt.Sprintf does.
func NewDescription(format string, args ...any) Description {
	if len(args) == 0 {
		return Description(format)
	}
	return Description(fmt.Sprintf(format, args...))
}

func (d Description) prefix() string {
	if strings.TrimSpace(string(d)) == "" {
		return ""
	}
	return "[" + string(d) + "] "
}

// BasicFactory is a format string whose %s verbs receive the rendered arguments.
type BasicFactory struct {
	format    string
	arguments []any
}

// NewFactory returns a BasicFactory. Every verb in format must be %s.
func NewFactory(format string, arguments ...any) *BasicFactory {
	return &BasicFactory{format: format, arguments: arguments}
}

func (f *BasicFactory) Create(desc Description, repr Representation) string {
	if repr == nil {
		repr = StandardRepresentation{}
	}
	rendered := make([]any, len(f.arguments))
	for i, arg := range f.arguments {
		rendered[i] = repr.ToString(arg)
	}
	return desc.prefix() + fmt.Sprintf(f.format, rendered...)
}

func (f *BasicFactory) String() string {
	return f.Create("", StandardRepresentation{})
}

// ActualIsNull is the message reported when the value under test is absent.
func ActualIsNull() string {
	return "\nExpecting actual not to be null"
}

// ShouldNotBeNull wraps ActualIsNull so it can carry a description.
func ShouldNotBeNull() Factory {
	return NewFactory(ActualIsNull())
}

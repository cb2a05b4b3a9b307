package assert

import "errors"

var (
	// ErrAssertionFailed matches every *AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")
	// ErrNullSubject matches failures caused by an absent value under test.
	ErrNullSubject = errors.New("actual is null")
	// ErrInvalidArgument matches every *ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind classifies an AssertionError.
type Kind int

const (
	KindFailure Kind = iota
	KindNullSubject
)

func (k Kind) String() string {
	if k == KindNullSubject {
		return "null-subject"
	}
	return "failure"
}

// AssertionError is a failed check on the value under test.
type AssertionError struct {
	Kind    Kind
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

func (e *AssertionError) Is(target error) bool {
	switch target {
	case ErrAssertionFailed:
		return true
	case ErrNullSubject:
		return e.Kind == KindNullSubject
	}
	return false
}

// ArgumentError is a misuse of an assertion, such as a nil reference value.
type ArgumentError struct {
	Param   string
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Package optional provides a value that may or may not be present.
package optional

import "fmt"

// Optional holds either a value or nothing. The zero Optional is empty.
type Optional[V any] struct {
	value   V
	present bool
}

// Of returns an Optional holding v.
func Of[V any](v V) Optional[V] {
	return Optional[V]{value: v, present: true}
}

// Empty returns an Optional holding nothing.
func Empty[V any]() Optional[V] {
	return Optional[V]{}
}

// OfNullable returns an Optional holding *p, or an empty one when p is nil.
func OfNullable[V any](p *V) Optional[V] {
	if p == nil {
		return Empty[V]()
	}
	return Of(*p)
}

func (o Optional[V]) IsPresent() bool {
	return o.present
}

func (o Optional[V]) IsEmpty() bool {
	return !o.present
}

// Get returns the held value and whether there was one.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

// Value returns the held value as an any, for callers that only know the
// Optional through an interface. It is nil when the Optional is empty.
func (o Optional[V]) Value() any {
	if !o.present {
		return nil
	}
	return o.value
}

// OrElse returns the held value, or fallback when empty.
func (o Optional[V]) OrElse(fallback V) V {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[V]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

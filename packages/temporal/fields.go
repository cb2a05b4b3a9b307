package temporal

import "time"

// Fields is the zone-local calendar representation of a time.Time.
// Fields below the masking granularity are zero.
type Fields struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// FieldsOf reads every calendar field of t in t's own location.
func FieldsOf(t time.Time) Fields {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return Fields{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: t.Nanosecond(),
	}
}

// Mask returns the fields of t with everything finer than g cleared.
func Mask(t time.Time, g Granularity) Fields {
	f := FieldsOf(t)
	if g >= Second {
		f.Nanosecond = 0
	}
	if g >= Minute {
		f.Second = 0
	}
	if g >= Hour {
		f.Minute = 0
	}
	if g >= Day {
		f.Hour = 0
	}
	return f
}

// EqualAt reports whether a and b carry the same zone-local fields down to g.
//
// The comparison is field-wise: 23:50:59.999999999 and 23:51:00 are one
// nanosecond apart but differ at Minute granularity.
func EqualAt(a, b time.Time, g Granularity) bool {
	return Mask(a, g) == Mask(b, g)
}

// EqualAtIn is EqualAt after converting both operands to loc.
// A nil loc behaves like EqualAt.
func EqualAtIn(a, b time.Time, g Granularity, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	return EqualAt(a, b, g)
}

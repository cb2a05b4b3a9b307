package errmsg

import (
	"fmt"
	"reflect"
	"time"

	"github.com/abdul-hamid-achik/hitassert/packages/temporal"
)

// Representation renders values inside failure messages.
type Representation interface {
	ToString(v any) string
}

// StandardRepresentation renders times as minimal ISO-8601 (see temporal.Format)
// unless TimeLayout is set, quotes strings and prints absent values as null.
type StandardRepresentation struct {
	TimeLayout string
}

func (r StandardRepresentation) ToString(v any) string {
	if v == nil || isNilPointer(v) {
		return "null"
	}
	switch val := v.(type) {
	case time.Time:
		if r.TimeLayout != "" {
			return val.Format(r.TimeLayout)
		}
		return temporal.Format(val)
	case *time.Time:
		return r.ToString(*val)
	case string:
		return `"` + val + `"`
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprintf("%v", v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

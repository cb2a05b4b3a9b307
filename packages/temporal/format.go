package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Format renders t as an ISO-8601 local date-time followed by its offset,
// printing only the precision the value carries:
//
//	2000-01-01T23:51Z
//	2000-01-01T00:00:01Z
//	2000-01-01T23:50:59.999999999Z
//	2013-06-10T02:00+02:00[Europe/Berlin]
//
// Seconds appear only when seconds or the fraction are non-zero, and the
// fraction is printed in groups of three digits.
func Format(t time.Time) string {
	var b strings.Builder
	f := FieldsOf(t)

	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d", f.Year, int(f.Month), f.Day, f.Hour, f.Minute)
	if f.Second > 0 || f.Nanosecond > 0 {
		fmt.Fprintf(&b, ":%02d", f.Second)
		switch {
		case f.Nanosecond == 0:
		case f.Nanosecond%1_000_000 == 0:
			fmt.Fprintf(&b, ".%03d", f.Nanosecond/1_000_000)
		case f.Nanosecond%1_000 == 0:
			fmt.Fprintf(&b, ".%06d", f.Nanosecond/1_000)
		default:
			fmt.Fprintf(&b, ".%09d", f.Nanosecond)
		}
	}

	_, offset := t.Zone()
	b.WriteString(formatOffset(offset))

	if name := t.Location().String(); name != "" && name != "UTC" && name != "Local" {
		b.WriteString("[" + name + "]")
	}
	return b.String()
}

func formatOffset(offset int) string {
	if offset == 0 {
		return "Z"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours, minutes, seconds := offset/3600, offset/60%60, offset%60
	if seconds != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
}

package temporal

import (
	"fmt"
	"strings"
)

// Granularity is the finest calendar field taken into account by a masked comparison.
type Granularity int

const (
	Nanosecond Granularity = iota
	Second
	Minute
	Hour
	Day
)

var granularityNames = map[Granularity]string{
	Nanosecond: "nanosecond",
	Second:     "second",
	Minute:     "minute",
	Hour:       "hour",
	Day:        "day",
}

func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// Valid reports whether g is one of the declared granularities.
func (g Granularity) Valid() bool {
	_, ok := granularityNames[g]
	return ok
}

// Fields returns the names of the compared fields, coarsest first.
func (g Granularity) Fields() []string {
	all := []string{"year", "month", "day", "hour", "minute", "second", "nanosecond"}
	switch g {
	case Nanosecond:
		return all
	case Second:
		return all[:6]
	case Minute:
		return all[:5]
	case Hour:
		return all[:4]
	case Day:
		return all[:3]
	}
	return nil
}

// Description lists the compared fields in prose,
// e.g. "year, month, day, hour and minute".
func (g Granularity) Description() string {
	fields := g.Fields()
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
}

// Ignored names what a comparison at g leaves out, as used in
// "equal ignoring <Ignored>".
func (g Granularity) Ignored() string {
	switch g {
	case Second:
		return "nanoseconds"
	case Minute:
		return "seconds"
	case Hour:
		return "minutes"
	case Day:
		return "hours"
	}
	return "nothing"
}

// ParseGranularity accepts either the compared field ("minute") or the ignored
// one ("seconds", "ignoringSeconds"), case-insensitively.
func ParseGranularity(s string) (Granularity, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "ignoring")
	key = strings.TrimPrefix(key, "-")
	switch key {
	case "nanosecond", "none":
		return Nanosecond, nil
	case "second", "nanos", "nanoseconds", "fraction":
		return Second, nil
	case "minute", "seconds":
		return Minute, nil
	case "hour", "minutes":
		return Hour, nil
	case "day", "hours":
		return Day, nil
	}
	return Nanosecond, fmt.Errorf("unknown granularity %q", s)
}

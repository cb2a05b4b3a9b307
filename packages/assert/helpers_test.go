package assert

import "fmt"

// recordingT captures what assertions report to a test handle.
type recordingT struct {
	errors  []string
	failNow int
	helpers int
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failNow++
}

func (r *recordingT) Helper() {
	r.helpers++
}

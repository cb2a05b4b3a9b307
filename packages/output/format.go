package output

import (
	"time"

	"github.com/abdul-hamid-achik/hitassert/packages/core/runner"
	"github.com/abdul-hamid-achik/hitassert/packages/errmsg"
)

// Formatter renders run results as they complete.
type Formatter interface {
	FormatHeader(version string)
	FormatResult(result *runner.RunResult)
	FormatError(err error)
}

// Flushable is implemented by formatters that write everything at the end.
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

// formatValue renders an assertion operand the way failure messages do.
func formatValue(v any, layout string) string {
	return errmsg.StandardRepresentation{TimeLayout: layout}.ToString(v)
}

func failureDetail(r *runner.CaseResult) string {
	if r.Assertion == nil {
		return ""
	}
	return r.Assertion.Message
}

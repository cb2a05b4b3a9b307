package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/hitassert/packages/assertions"
	"github.com/abdul-hamid-achik/hitassert/packages/core/runner"
)

const sameMinuteMessage = "\nExpecting:\n  <2000-01-01T23:51Z>\nto have same year, month, day, hour and minute as:\n  <2000-01-01T23:50:59.999999999Z>\nbut had not."

func sampleResult() *runner.RunResult {
	return &runner.RunResult{
		File:     "times.yaml",
		Duration: 12 * time.Millisecond,
		Passed:   1,
		Failed:   2,
		Skipped:  1,
		Results: []*runner.CaseResult{
			{
				Name:   "same second",
				Check:  "equalIgnoringNanos",
				Passed: true,
				Assertion: &assertions.Result{
					Passed:   true,
					Subject:  "2000-01-01T23:51:00.1Z",
					Operator: "equalIgnoringNanos",
					Actual:   time.Date(2000, 1, 1, 23, 51, 0, 100000000, time.UTC),
					Expected: time.Date(2000, 1, 1, 23, 51, 0, 0, time.UTC),
				},
			},
			{
				Name:  "one nano apart",
				Check: "equalIgnoringSeconds",
				Tags:  []string{"edge"},
				Assertion: &assertions.Result{
					Subject:  "2000-01-01T23:51:00Z",
					Operator: "equalIgnoringSeconds",
					Actual:   time.Date(2000, 1, 1, 23, 51, 0, 0, time.UTC),
					Expected: time.Date(2000, 1, 1, 23, 50, 59, 999999999, time.UTC),
					Kind:     "failure",
					Message:  sameMinuteMessage,
				},
			},
			{
				Name:  "broken payload",
				Check: "equal",
				Error: errors.New("subject: failed to read missing.json"),
				Assertion: &assertions.Result{
					Kind:    assertions.KindError,
					Message: "subject: failed to read missing.json",
				},
			},
			{
				Name:       "pending",
				Check:      "equal",
				Skipped:    true,
				SkipReason: "not ready",
			},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	f.FormatHeader("v1.0.0")
	f.FormatResult(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "hitassert v1.0.0")
	assert.Contains(t, out, "Running: times.yaml")
	assert.Contains(t, out, "✓ same second (equalIgnoringNanos)")
	assert.Contains(t, out, "✗ one nano apart (equalIgnoringSeconds)")
	assert.Contains(t, out, "Subject:   2000-01-01T23:51Z")
	assert.Contains(t, out, "Reference: 2000-01-01T23:50:59.999999999Z")
	assert.Contains(t, out, "to have same year, month, day, hour and minute as:")
	assert.Contains(t, out, "x broken payload (subject: failed to read missing.json)")
	assert.Contains(t, out, "- pending (not ready)")
	assert.Contains(t, out, "1 passed, 2 failed, 1 skipped, 4 total")
	assert.NotContains(t, out, "2000-01-01T23:51:00.1Z", "passing cases stay terse")
}

func TestConsoleFormatter_VerboseAndLayout(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true), WithTimeLayout(time.RFC3339))
	f.FormatResult(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Subject:   2000-01-01T23:51:00Z")
	assert.Contains(t, out, "Reference: 2000-01-01T23:50:59Z")
}

func TestConsoleFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	f.FormatError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))
	f.FormatHeader("v1.0.0")
	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(20*time.Millisecond))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	_, err := uuid.Parse(out.RunID)
	assert.NoError(t, err)
	assert.Equal(t, f.RunID(), out.RunID)
	assert.Equal(t, "v1.0.0", out.Version)
	assert.Equal(t, JSONSummary{Total: 4, Passed: 1, Failed: 2, Skipped: 1}, out.Summary)
	require.Len(t, out.Cases, 4)

	failed := out.Cases[1]
	assert.Equal(t, "one nano apart", failed.Name)
	assert.Equal(t, []string{"edge"}, failed.Tags)
	require.NotNil(t, failed.Assertion)
	assert.Equal(t, "2000-01-01T23:51:00Z", failed.Assertion.Actual)
	assert.Equal(t, "2000-01-01T23:50:59.999999999Z", failed.Assertion.Expected)
	assert.Equal(t, "failure", failed.Assertion.Kind)
	assert.Equal(t, sameMinuteMessage, failed.Assertion.Message)

	assert.Equal(t, "subject: failed to read missing.json", out.Cases[2].Error)
	assert.Equal(t, "not ready", out.Cases[3].SkipReason)
}

func TestJSONFormatter_RunID(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf), JSONWithRunID("run-1"))
	require.NoError(t, f.Flush(0))
	assert.Contains(t, buf.String(), `"runId": "run-1"`)

	assert.NotEqual(t, NewJSONFormatter().RunID(), NewJSONFormatter().RunID())
}

func TestJUnitFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJUnitFormatter(JUnitWithWriter(&buf))
	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(20*time.Millisecond))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal([]byte(strings.SplitN(out, "\n", 2)[1]), &suites))
	assert.Equal(t, "hitassert", suites.Name)
	assert.Equal(t, 4, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Errors)
	assert.Equal(t, 1, suites.Skipped)

	require.Len(t, suites.TestSuites, 1)
	cases := suites.TestSuites[0].TestCases
	require.Len(t, cases, 4)
	assert.Nil(t, cases[0].Failure)
	assert.Equal(t, "times.yaml.equalIgnoringSeconds", cases[1].ClassName)
	require.NotNil(t, cases[1].Failure)
	assert.Equal(t, "Assertion failed (failure)", cases[1].Failure.Message)
	assert.Contains(t, cases[1].Failure.Content, "reference: 2000-01-01T23:50:59.999999999Z")
	require.NotNil(t, cases[2].Error)
	require.NotNil(t, cases[3].Skipped)
	assert.Equal(t, "not ready", cases[3].Skipped.Message)
}

func TestTAPFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTAPFormatter(TAPWithWriter(&buf))
	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(0))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "TAP version 13\n1..4\n"))
	assert.Contains(t, out, "ok 1 - same second\n")
	assert.Contains(t, out, "not ok 2 - one nano apart\n  ---\n")
	assert.Contains(t, out, "  severity: fail\n")
	assert.Contains(t, out, "  kind: failure\n")
	assert.Contains(t, out, "  reference: ")
	assert.Contains(t, out, "2000-01-01T23:50:59.999999999Z")
	assert.Contains(t, out, "not ok 3 - broken payload\n")
	assert.Contains(t, out, "  severity: error\n")
	assert.Contains(t, out, "ok 4 - pending # SKIP not ready\n")
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewHTMLFormatter(HTMLWithWriter(&buf))
	f.FormatHeader("v1.0.0")
	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(20*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "<h1>hitassert v1.0.0</h1>")
	assert.Contains(t, out, "1 passed, 2 failed, 1 skipped, 4 total")
	assert.Contains(t, out, `<tr class="failed">`)
	assert.Contains(t, out, "2000-01-01T23:50:59.999999999Z")
	assert.Contains(t, out, "skipped: not ready")
}

func TestFormattersImplementInterfaces(t *testing.T) {
	var _ Formatter = NewConsoleFormatter()
	for _, f := range []Formatter{NewJSONFormatter(), NewJUnitFormatter(), NewTAPFormatter(), NewHTMLFormatter()} {
		_, ok := f.(Flushable)
		assert.True(t, ok, "%T", f)
	}
}

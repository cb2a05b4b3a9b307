package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/hitassert/packages/core/runner"
	"github.com/abdul-hamid-achik/hitassert/packages/output"
)

const passingCases = `cases:
  - name: same minute
    subject: "2000-01-01T23:51:00Z"
    reference: "2000-01-01T23:51:42Z"
    check: equalIgnoringSeconds
`

const failingCases = `cases:
  - name: minute boundary
    subject: "2000-01-01T23:51:00Z"
    reference: "2000-01-01T23:50:59.999999999Z"
    check: equalIgnoringSeconds
`

// missing reference
const malformedCases = `cases:
  - name: no reference
    subject: "2000-01-01T23:51:00Z"
    check: equalIgnoringSeconds
`

func writeCaseFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i, content := range contents {
		path := filepath.Join(dir, fmt.Sprintf("%d.yaml", i))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}
	return paths
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name        string
		parseErrors int
		failed      int
		want        int
	}{
		{"all passed", 0, 0, ExitSuccess},
		{"failed cases", 0, 3, ExitTestFailure},
		{"parse error", 1, 0, ExitParseError},
		{"parse error wins over failures", 1, 2, ExitParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.parseErrors, tt.failed))
		})
	}
}

func TestRunFiles(t *testing.T) {
	files := writeCaseFiles(t, passingCases, malformedCases, failingCases)
	var buf bytes.Buffer
	formatter := output.NewConsoleFormatter(output.WithWriter(&buf), output.WithNoColor(true))

	summary := runFiles(runner.NewRunner(nil), files, formatter, false)

	assert.Equal(t, 1, summary.passed)
	assert.Equal(t, 1, summary.failed)
	assert.Equal(t, 1, summary.parseErrors)
	assert.Equal(t, ExitParseError, exitCodeFor(summary.parseErrors, summary.failed))
	assert.Contains(t, buf.String(), "schema validation failed")
}

func TestRunFiles_FailuresOnly(t *testing.T) {
	files := writeCaseFiles(t, passingCases, failingCases)
	formatter := output.NewConsoleFormatter(output.WithWriter(&bytes.Buffer{}), output.WithNoColor(true))

	summary := runFiles(runner.NewRunner(nil), files, formatter, false)

	assert.Equal(t, 0, summary.parseErrors)
	assert.Equal(t, ExitTestFailure, exitCodeFor(summary.parseErrors, summary.failed))
}

func TestRunFiles_BailStopsAtParseError(t *testing.T) {
	files := writeCaseFiles(t, malformedCases, passingCases)
	formatter := output.NewConsoleFormatter(output.WithWriter(&bytes.Buffer{}), output.WithNoColor(true))

	summary := runFiles(runner.NewRunner(nil), files, formatter, true)

	assert.Equal(t, 1, summary.parseErrors)
	assert.Equal(t, 0, summary.passed)
}

func TestValidateFiles(t *testing.T) {
	files := writeCaseFiles(t, passingCases, malformedCases)
	var out, errOut bytes.Buffer

	invalid := validateFiles(&out, &errOut, files)

	assert.Equal(t, 1, invalid)
	assert.Contains(t, out.String(), "Valid: ")
	assert.Contains(t, errOut.String(), "Error in ")
	assert.Equal(t, ExitParseError, exitCodeFor(invalid, 0))
}

func report(cases ...output.JSONCase) *output.JSONOutput {
	return &output.JSONOutput{RunID: "run", Cases: cases}
}

func TestCompareReports(t *testing.T) {
	failure := &output.JSONAssertion{Kind: "failure"}
	nullSubject := &output.JSONAssertion{Kind: "null-subject"}

	before := report(
		output.JSONCase{File: "a.yaml", Name: "fixed", Passed: false, Assertion: failure},
		output.JSONCase{File: "a.yaml", Name: "broke", Passed: true},
		output.JSONCase{File: "a.yaml", Name: "steady", Passed: true},
		output.JSONCase{File: "a.yaml", Name: "kind", Passed: false, Assertion: failure},
		output.JSONCase{File: "a.yaml", Name: "gone", Passed: true},
		output.JSONCase{File: "a.yaml", Name: "skipped", Skipped: true},
	)
	after := report(
		output.JSONCase{File: "a.yaml", Name: "fixed", Passed: true},
		output.JSONCase{File: "a.yaml", Name: "broke", Passed: false, Assertion: failure},
		output.JSONCase{File: "a.yaml", Name: "steady", Passed: true},
		output.JSONCase{File: "a.yaml", Name: "kind", Passed: false, Assertion: nullSubject},
		output.JSONCase{File: "b.yaml", Name: "fresh", Passed: true},
	)

	diff := compareReports("before.json", "after.json", before, after)

	status := make(map[string]string)
	for _, c := range diff.Comparisons {
		status[c.File+"::"+c.Name] = c.StatusChange
	}
	assert.Equal(t, map[string]string{
		"a.yaml::fixed":  "improved",
		"a.yaml::broke":  "regressed",
		"a.yaml::steady": "unchanged",
		"a.yaml::kind":   "changed",
		"a.yaml::gone":   "removed",
		"b.yaml::fresh":  "new",
	}, status)

	assert.Equal(t, DiffSummary{
		TotalCases:   6,
		Improved:     1,
		Regressed:    1,
		Changed:      1,
		Unchanged:    1,
		NewCases:     1,
		RemovedCases: 1,
	}, diff.Summary)

	assert.Equal(t, "a.yaml", diff.Comparisons[0].File)
	assert.Equal(t, "b.yaml", diff.Comparisons[len(diff.Comparisons)-1].File)
}

func TestDiffOutput(t *testing.T) {
	diff := compareReports("a.json", "b.json",
		report(output.JSONCase{File: "a.yaml", Name: "x", Passed: true}),
		report(output.JSONCase{File: "a.yaml", Name: "x", Passed: false, Assertion: &output.JSONAssertion{Kind: "failure"}}),
	)

	var console bytes.Buffer
	require.NoError(t, outputDiffConsole(&console, diff))
	assert.Contains(t, console.String(), "passed → failure")

	var js bytes.Buffer
	require.NoError(t, outputDiffJSON(&js, diff))
	assert.Contains(t, js.String(), `"statusChange": "regressed"`)
}

func TestLoadReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"runId":"abc","cases":[{"name":"x","file":"a.yaml","passed":true}]}`), 0644))

	r, err := loadReport(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", r.RunID)
	require.Len(t, r.Cases, 1)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
	_, err = loadReport(path)
	assert.Error(t, err)
}

func TestLoadVariables(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("day=2000-01-01\nzone=UTC\n"), 0644))

	envFileFlag, varFlags = envPath, []string{"day=2000-01-02"}
	t.Cleanup(func() { envFileFlag, varFlags = "", nil })

	vars, err := loadVariables()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"day": "2000-01-02", "zone": "UTC"}, vars)

	varFlags = []string{"novalue"}
	_, err = loadVariables()
	assert.Error(t, err)
}

func TestIsCaseFile(t *testing.T) {
	assert.True(t, isCaseFile("times.yaml"))
	assert.True(t, isCaseFile("times.yml"))
	assert.False(t, isCaseFile("order.json"))
	assert.True(t, isConfigFile(filepath.Join("cases", "hitassert.yaml")))
	assert.False(t, isConfigFile("times.yaml"))
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.Stop()

	d.Trigger("a.yaml")
	d.Trigger("b.yaml")
	d.Trigger("order.json")

	select {
	case name := <-d.C():
		assert.Equal(t, "order.json", name)
	case <-time.After(time.Second):
		t.Fatal("no re-run requested")
	}

	select {
	case name := <-d.C():
		t.Fatalf("unexpected second re-run for %s", name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	d.Trigger("a.yaml")
	d.Stop()

	select {
	case name := <-d.C():
		t.Fatalf("stopped debouncer fired for %s", name)
	case <-time.After(100 * time.Millisecond):
	}
}

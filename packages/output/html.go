package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/hitassert/packages/core/runner"
)

// HTMLOutput represents the complete HTML output structure
type HTMLOutput struct {
	Version        string
	Summary        HTMLSummary
	Cases          []HTMLCase
	Duration       float64
	Time           string
	PassedPercent  float64
	FailedPercent  float64
	SkippedPercent float64
}

// HTMLSummary represents the run summary for HTML output
type HTMLSummary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// HTMLCase represents a single case result for HTML output
type HTMLCase struct {
	Name        string
	File        string
	Check       string
	Passed      bool
	Skipped     bool
	SkipReason  string
	Duration    float64
	Error       string
	StatusClass string
	Subject     string
	Actual      string
	Reference   string
	Kind        string
	Message     string
}

// HTMLFormatter formats case results as a standalone HTML page
type HTMLFormatter struct {
	writer  io.Writer
	results []HTMLCase
	version string
}

// HTMLOption is a functional option for HTMLFormatter
type HTMLOption func(*HTMLFormatter)

// NewHTMLFormatter creates a new HTML formatter
func NewHTMLFormatter(opts ...HTMLOption) *HTMLFormatter {
	f := &HTMLFormatter{
		writer:  os.Stdout,
		results: make([]HTMLCase, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HTMLWithWriter sets the output writer
func HTMLWithWriter(w io.Writer) HTMLOption {
	return func(f *HTMLFormatter) {
		f.writer = w
	}
}

// FormatResult accumulates a run result
func (f *HTMLFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		c := HTMLCase{
			Name:     r.Name,
			File:     result.File,
			Check:    r.Check,
			Passed:   r.Passed,
			Skipped:  r.Skipped,
			Duration: float64(r.Duration.Microseconds()) / 1000,
		}

		if r.Skipped {
			c.StatusClass = "skipped"
		} else if r.Passed {
			c.StatusClass = "passed"
		} else {
			c.StatusClass = "failed"
		}

		if r.SkipReason != "" && r.SkipReason != "filtered out" {
			c.SkipReason = r.SkipReason
		}

		if r.Error != nil {
			c.Error = r.Error.Error()
		}

		if a := r.Assertion; a != nil {
			c.Subject = a.Subject
			c.Actual = formatValue(a.Actual, "")
			c.Reference = formatValue(a.Expected, "")
			c.Kind = a.Kind
			c.Message = a.Message
		}

		f.results = append(f.results, c)
	}
}

// FormatError handles errors (no-op for HTML, errors are in case results)
func (f *HTMLFormatter) FormatError(err error) {
	// Errors are included in individual case results
}

// FormatHeader captures the version for the HTML report
func (f *HTMLFormatter) FormatHeader(version string) {
	f.version = version
}

// Flush writes the accumulated HTML output
func (f *HTMLFormatter) Flush(totalDuration time.Duration) error {
	var passed, failed, skipped int
	for _, c := range f.results {
		if c.Skipped {
			skipped++
		} else if c.Passed {
			passed++
		} else {
			failed++
		}
	}

	total := len(f.results)
	var passedPct, failedPct, skippedPct float64
	if total > 0 {
		passedPct = float64(passed) / float64(total) * 100
		failedPct = float64(failed) / float64(total) * 100
		skippedPct = float64(skipped) / float64(total) * 100
	}

	output := HTMLOutput{
		Version: f.version,
		Summary: HTMLSummary{
			Total:   total,
			Passed:  passed,
			Failed:  failed,
			Skipped: skipped,
		},
		Cases:          f.results,
		Duration:       float64(totalDuration.Milliseconds()),
		Time:           time.Now().Format("2006-01-02 15:04:05"),
		PassedPercent:  passedPct,
		FailedPercent:  failedPct,
		SkippedPercent: skippedPct,
	}

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	return tmpl.Execute(f.writer, output)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>hitassert report</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 2rem; color: #222; }
.bar { display: flex; height: 8px; border-radius: 4px; overflow: hidden; margin: 1rem 0; }
.bar .passed { background: #2e7d32; } .bar .failed { background: #c62828; } .bar .skipped { background: #f9a825; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #eee; vertical-align: top; }
tr.passed td:first-child { border-left: 4px solid #2e7d32; }
tr.failed td:first-child { border-left: 4px solid #c62828; }
tr.skipped td:first-child { border-left: 4px solid #f9a825; }
pre { margin: 0; white-space: pre-wrap; font-size: .85rem; }
code { font-size: .85rem; }
</style>
</head>
<body>
<h1>hitassert {{.Version}}</h1>
<p>{{.Summary.Passed}} passed, {{.Summary.Failed}} failed, {{.Summary.Skipped}} skipped, {{.Summary.Total}} total in {{printf "%.0f" .Duration}}ms ({{.Time}})</p>
<div class="bar">
<div class="passed" style="width: {{printf "%.2f" .PassedPercent}}%"></div>
<div class="failed" style="width: {{printf "%.2f" .FailedPercent}}%"></div>
<div class="skipped" style="width: {{printf "%.2f" .SkippedPercent}}%"></div>
</div>
<table>
<tr><th>Case</th><th>Check</th><th>Subject</th><th>Reference</th><th>Detail</th></tr>
{{range .Cases}}<tr class="{{.StatusClass}}">
<td>{{.Name}}<br><small>{{.File}}</small></td>
<td><code>{{.Check}}</code></td>
<td><code>{{.Actual}}</code>{{if .Subject}}<br><small>{{.Subject}}</small>{{end}}</td>
<td><code>{{.Reference}}</code></td>
<td>{{if .Skipped}}skipped{{if .SkipReason}}: {{.SkipReason}}{{end}}{{else if .Error}}<pre>{{.Error}}</pre>{{else if .Passed}}{{if .Message}}<pre>{{.Message}}</pre>{{end}}{{else}}<strong>{{.Kind}}</strong><pre>{{.Message}}</pre>{{end}}</td>
</tr>
{{end}}</table>
</body>
</html>
`

package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abdul-hamid-achik/hitassert/packages/core/runner"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	RunID    string      `json:"runId"`
	Version  string      `json:"version,omitempty"`
	Summary  JSONSummary `json:"summary"`
	Cases    []JSONCase  `json:"cases"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

// JSONSummary represents the run summary
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONCase represents a single case result
type JSONCase struct {
	Name       string         `json:"name"`
	File       string         `json:"file"`
	Check      string         `json:"check"`
	Tags       []string       `json:"tags,omitempty"`
	Passed     bool           `json:"passed"`
	Skipped    bool           `json:"skipped,omitempty"`
	SkipReason string         `json:"skipReason,omitempty"`
	Duration   float64        `json:"duration"`
	Error      string         `json:"error,omitempty"`
	Assertion  *JSONAssertion `json:"assertion,omitempty"`
}

// JSONAssertion represents the evaluated check of a case
type JSONAssertion struct {
	Subject  string `json:"subject"`
	Operator string `json:"operator"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
	Kind     string `json:"kind,omitempty"`
	Message  string `json:"message,omitempty"`
}

// JSONFormatter formats case results as JSON
type JSONFormatter struct {
	writer  io.Writer
	runID   string
	version string
	results []JSONCase
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer:  os.Stdout,
		runID:   uuid.NewString(),
		results: make([]JSONCase, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

// JSONWithRunID replaces the generated run ID.
func JSONWithRunID(id string) JSONOption {
	return func(f *JSONFormatter) {
		f.runID = id
	}
}

func (f *JSONFormatter) RunID() string {
	return f.runID
}

func (f *JSONFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		c := JSONCase{
			Name:     r.Name,
			File:     result.File,
			Check:    r.Check,
			Tags:     r.Tags,
			Passed:   r.Passed,
			Skipped:  r.Skipped,
			Duration: float64(r.Duration.Microseconds()) / 1000,
		}

		if r.SkipReason != "" && r.SkipReason != "filtered out" {
			c.SkipReason = r.SkipReason
		}

		if r.Error != nil {
			c.Error = r.Error.Error()
		}

		if a := r.Assertion; a != nil {
			c.Assertion = &JSONAssertion{
				Subject:  a.Subject,
				Operator: a.Operator,
				Expected: formatValue(a.Expected, time.RFC3339Nano),
				Actual:   formatValue(a.Actual, time.RFC3339Nano),
				Passed:   a.Passed,
				Kind:     a.Kind,
				Message:  a.Message,
			}
		}

		f.results = append(f.results, c)
	}
}

func (f *JSONFormatter) FormatError(err error) {
	// Errors are included in individual case results
}

func (f *JSONFormatter) FormatHeader(version string) {
	f.version = version
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
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

	output := JSONOutput{
		RunID:   f.runID,
		Version: f.version,
		Summary: JSONSummary{
			Total:   len(f.results),
			Passed:  passed,
			Failed:  failed,
			Skipped: skipped,
		},
		Cases:    f.results,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

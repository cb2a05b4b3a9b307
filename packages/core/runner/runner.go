package runner

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abdul-hamid-achik/hitassert/packages/assert"
	"github.com/abdul-hamid-achik/hitassert/packages/assertions"
	"github.com/abdul-hamid-achik/hitassert/packages/builtin"
	"github.com/abdul-hamid-achik/hitassert/packages/cases"
	"github.com/abdul-hamid-achik/hitassert/packages/core/env"
)

const (
	// DefaultConcurrency is the default number of concurrent cases in parallel mode
	DefaultConcurrency = 5
)

type Runner struct {
	config *Config
	log    logrus.FieldLogger
}

type Config struct {
	Verbose     bool
	Bail        bool
	NameFilter  string
	TagsFilter  []string
	Parallel    bool
	Concurrency int
	// Location reads zone-less timestamps in files that declare none.
	Location *time.Location
	// Clock backs now() and today(); the wall clock when nil.
	Clock builtin.Clock
	// Variables override a file's own variables block.
	Variables     map[string]string
	AssertOptions []assert.Option
	Logger        logrus.FieldLogger
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Runner{
		config: cfg,
		log:    log,
	}
}

type RunResult struct {
	File     string
	Results  []*CaseResult
	Duration time.Duration
	Passed   int
	Failed   int
	Skipped  int
}

type CaseResult struct {
	Name       string
	Check      string
	Tags       []string
	Passed     bool
	Skipped    bool
	SkipReason string
	Duration   time.Duration
	Assertion  *assertions.Result
	Error      error
}

func (r *Runner) RunFile(path string) (*RunResult, error) {
	file, err := cases.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return r.Run(file)
}

// Run evaluates every selected case of an already parsed file.
func (r *Runner) Run(file *cases.File) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{
		File: file.Path,
	}

	evaluator := r.newEvaluator(file)
	log := r.log.WithField("file", file.Path)

	// One slot per case keeps file order whatever runs, skips or bails.
	slots := make([]*CaseResult, len(file.Cases))
	var selected []int
	for i, c := range file.Cases {
		switch {
		case !r.shouldRun(c):
			slots[i] = skippedResult(c, "filtered out")
		case c.Skip != "":
			slots[i] = skippedResult(c, c.Skip)
		default:
			selected = append(selected, i)
		}
	}
	log.WithField("selected", len(selected)).Debug("running cases")

	if r.config.Parallel && !r.config.Bail {
		r.runParallel(evaluator, file.Cases, selected, slots)
	} else {
		for _, i := range selected {
			slots[i] = r.runCase(evaluator, file.Cases[i])
			if !slots[i].Passed && r.config.Bail {
				log.WithField("case", file.Cases[i].Name).Debug("bailing after failure")
				break
			}
		}
	}

	for _, c := range slots {
		if c != nil {
			result.add(c)
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func skippedResult(c *cases.Case, reason string) *CaseResult {
	return &CaseResult{
		Name:       c.Name,
		Check:      string(c.Check),
		Tags:       c.Tags,
		Skipped:    true,
		SkipReason: reason,
	}
}

func (res *RunResult) add(c *CaseResult) {
	res.Results = append(res.Results, c)
	switch {
	case c.Skipped:
		res.Skipped++
	case c.Passed:
		res.Passed++
	default:
		res.Failed++
	}
}

func (r *Runner) newEvaluator(file *cases.File) *assertions.Evaluator {
	opts := []builtin.Option{builtin.WithLocation(file.Loc(r.config.Location))}
	if r.config.Clock != nil {
		opts = append(opts, builtin.WithClock(r.config.Clock))
	}
	vars := env.NewVars()
	vars.SetAll(file.Variables)
	vars.SetAll(r.config.Variables)

	resolver := cases.NewResolver(file.Dir(), builtin.NewRegistry(opts...), cases.WithVars(vars))
	return assertions.NewEvaluator(resolver, assertions.WithAssertOptions(r.config.AssertOptions...))
}

func (r *Runner) runParallel(evaluator *assertions.Evaluator, all []*cases.Case, selected []int, slots []*CaseResult) {
	concurrency := r.config.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for _, i := range selected {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			slots[idx] = r.runCase(evaluator, all[idx])
		}(i)
	}

	wg.Wait()
}

func (r *Runner) runCase(evaluator *assertions.Evaluator, c *cases.Case) *CaseResult {
	start := time.Now()
	res := evaluator.Evaluate(c)

	caseResult := &CaseResult{
		Name:      c.Name,
		Check:     string(c.Check),
		Tags:      c.Tags,
		Passed:    res.Passed,
		Duration:  time.Since(start),
		Assertion: res,
	}
	if res.Kind == assertions.KindError {
		caseResult.Error = errors.New(res.Message)
	}

	r.log.WithFields(logrus.Fields{
		"case":   c.Name,
		"check":  c.Check,
		"passed": res.Passed,
		"kind":   res.Kind,
	}).Debug("case evaluated")
	return caseResult
}

func (r *Runner) shouldRun(c *cases.Case) bool {
	if r.config.NameFilter != "" {
		if !matchesPattern(c.Name, r.config.NameFilter) {
			return false
		}
	}

	if len(r.config.TagsFilter) > 0 {
		if !c.HasTag(r.config.TagsFilter...) {
			return false
		}
	}

	return true
}

// matchesPattern supports a leading and/or trailing * wildcard.
func matchesPattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if pattern == "*" {
		return true
	}

	if pattern[0] == '*' && pattern[len(pattern)-1] == '*' {
		substr := pattern[1 : len(pattern)-1]
		for i := 0; i <= len(name)-len(substr); i++ {
			if name[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	}

	if pattern[0] == '*' {
		suffix := pattern[1:]
		return len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix
	}

	if pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(name) >= len(prefix) && name[:len(prefix)] == prefix
	}

	return name == pattern
}

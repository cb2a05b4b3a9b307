package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hitassert/packages/core/config"
	"github.com/abdul-hamid-achik/hitassert/packages/core/env"
	"github.com/abdul-hamid-achik/hitassert/packages/core/runner"
	"github.com/abdul-hamid-achik/hitassert/packages/output"
)

var runCmd = &cobra.Command{
	Use:   "run <file|directory>",
	Short: "Evaluate temporal assertion cases",
	Long: `Evaluate the cases defined in .yaml or .yml case files.

Examples:
  hitassert run times.yaml
  hitassert run ./cases/ --tags smoke
  hitassert run times.yaml --name "order*"
  hitassert run ./cases/ -o junit --output-file report.xml
  hitassert run ./cases/ --location Europe/Berlin --normalize-zone
  hitassert run times.yaml --env-file .env --var day=2000-01-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	configFlag        string
	nameFlag          string
	tagsFlag          string
	verboseFlag       bool
	noColorFlag       bool
	bailFlag          bool
	outputFlag        string
	outputFileFlag    string
	parallelFlag      bool
	concurrencyFlag   int
	watchFlag         bool
	locationFlag      string
	normalizeZoneFlag bool
	timeFormatFlag    string
	envFileFlag       string
	varFlags          []string
	openFlag          bool
)

func init() {
	runCmd.Flags().StringVar(&configFlag, "config", getEnvString("HITASSERT_CONFIG", ""), "Path to config file (env: HITASSERT_CONFIG)")
	runCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Run only cases matching name pattern")
	runCmd.Flags().StringVarP(&tagsFlag, "tags", "t", getEnvString("HITASSERT_TAGS", ""), "Run only cases with specified tags (comma-separated) (env: HITASSERT_TAGS)")

	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("HITASSERT_VERBOSE", false), "Show operands of passing cases too (env: HITASSERT_VERBOSE)")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("HITASSERT_NO_COLOR", false), "Disable colored output (env: HITASSERT_NO_COLOR)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("HITASSERT_OUTPUT", ""), "Output format: console, json, junit, tap, html (env: HITASSERT_OUTPUT)")
	runCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("HITASSERT_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: HITASSERT_OUTPUT_FILE)")
	runCmd.Flags().StringVar(&timeFormatFlag, "time-format", getEnvString("HITASSERT_TIME_FORMAT", ""), "Console time format: iso, rfc3339, rfc3339nano or a Go layout (env: HITASSERT_TIME_FORMAT)")

	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("HITASSERT_BAIL", false), "Stop on first failure (env: HITASSERT_BAIL)")
	runCmd.Flags().BoolVarP(&parallelFlag, "parallel", "p", getEnvBool("HITASSERT_PARALLEL", false), "Evaluate cases in parallel (env: HITASSERT_PARALLEL)")
	runCmd.Flags().IntVar(&concurrencyFlag, "concurrency", getEnvInt("HITASSERT_CONCURRENCY", runner.DefaultConcurrency), "Number of concurrent cases when running in parallel (env: HITASSERT_CONCURRENCY)")
	runCmd.Flags().BoolVar(&openFlag, "open", false, "Open the written report in a browser (html output with --output-file)")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and re-run cases")

	runCmd.Flags().StringVar(&locationFlag, "location", getEnvString("HITASSERT_LOCATION", ""), "Zone for timestamps without offset (env: HITASSERT_LOCATION)")
	runCmd.Flags().StringVar(&envFileFlag, "env-file", getEnvString("HITASSERT_ENV_FILE", ""), "Load {{name}} variables from a .env file (env: HITASSERT_ENV_FILE)")
	runCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Set a {{name}} variable as name=value (repeatable, wins over --env-file)")
	runCmd.Flags().BoolVar(&normalizeZoneFlag, "normalize-zone", getEnvBool("HITASSERT_NORMALIZE_ZONE", false), "Compare masked fields in --location instead of each value's own zone (env: HITASSERT_NORMALIZE_ZONE)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// loadRunConfig reads the config file and applies the flags the user set.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if configFlag == "" {
		if found := config.FindConfig("."); found != "" {
			log.WithField("path", found).Debug("using config file")
		}
	}

	overrides := &config.Config{}
	flags := cmd.Flags()
	if flags.Changed("location") || locationFlag != "" {
		overrides.Location = locationFlag
	}
	if flags.Changed("time-format") || timeFormatFlag != "" {
		overrides.TimeFormat = timeFormatFlag
	}
	if flags.Changed("output") || outputFlag != "" {
		overrides.Reporters = []string{outputFlag}
	}
	if flags.Changed("normalize-zone") || normalizeZoneFlag {
		overrides.NormalizeZone = config.BoolPtr(normalizeZoneFlag)
	}
	if flags.Changed("bail") || bailFlag {
		overrides.Bail = config.BoolPtr(bailFlag)
	}
	if flags.Changed("verbose") || verboseFlag {
		overrides.Verbose = config.BoolPtr(verboseFlag)
	}
	if flags.Changed("no-color") || noColorFlag {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}

	cfg := fileConfig.Merge(overrides)
	if _, err := cfg.Loc(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openReport(cmd *cobra.Command, path string) {
	if path == "" {
		log.Warn("--open needs a report file, set --output-file or outputDir")
		return
	}
	browser.Stdout = cmd.ErrOrStderr()
	browser.Stderr = cmd.ErrOrStderr()
	if err := browser.OpenFile(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("could not open report")
	}
}

// loadVariables merges --env-file and --var, later sources winning.
func loadVariables() (map[string]string, error) {
	vars := make(map[string]string)
	if envFileFlag != "" {
		loaded, err := env.LoadDotEnv(envFileFlag)
		if err != nil {
			return nil, err
		}
		for k, v := range loaded {
			vars[k] = v
		}
	}
	for _, kv := range varFlags {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", kv)
		}
		vars[strings.TrimSpace(name)] = value
	}
	return vars, nil
}

func newFormatter(cfg *config.Config, w io.Writer) output.Formatter {
	format := "console"
	if len(cfg.Reporters) > 0 && cfg.Reporters[0] != "" {
		format = cfg.Reporters[0]
	}

	switch strings.ToLower(format) {
	case "json":
		return output.NewJSONFormatter(output.JSONWithWriter(w))
	case "junit":
		return output.NewJUnitFormatter(output.JUnitWithWriter(w))
	case "tap":
		return output.NewTAPFormatter(output.TAPWithWriter(w))
	case "html":
		return output.NewHTMLFormatter(output.HTMLWithWriter(w))
	default:
		return output.NewConsoleFormatter(
			output.WithWriter(w),
			output.WithVerbose(cfg.GetVerbose()),
			output.WithNoColor(cfg.GetNoColor()),
			output.WithTimeLayout(cfg.TimeLayout()),
		)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	variables, err := loadVariables()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	var outWriter io.Writer = cmd.OutOrStdout()
	if outputFileFlag == "" && cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
		outputFileFlag = filepath.Join(cfg.OutputDir, "hitassert-report"+reportExtension(cfg))
	}
	if outputFileFlag != "" {
		f, err := os.Create(outputFileFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		outWriter = f
	}

	formatter := newFormatter(cfg, outWriter)
	formatter.FormatHeader(version)

	files, err := collectFiles(args)
	if err != nil {
		formatter.FormatError(err)
		return err
	}

	if len(files) == 0 {
		formatter.FormatError(fmt.Errorf("no .yaml or .yml case files found"))
		return fmt.Errorf("no files found")
	}

	var tagsFilter []string
	if tagsFlag != "" {
		for _, t := range strings.Split(tagsFlag, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				tagsFilter = append(tagsFilter, t)
			}
		}
	}

	loc, _ := cfg.Loc()
	assertOpts, err := cfg.AssertOptions()
	if err != nil {
		return err
	}

	r := runner.NewRunner(&runner.Config{
		Verbose:       cfg.GetVerbose(),
		Bail:          cfg.GetBail(),
		NameFilter:    nameFlag,
		TagsFilter:    tagsFilter,
		Parallel:      parallelFlag,
		Concurrency:   concurrencyFlag,
		Location:      loc,
		Variables:     variables,
		AssertOptions: assertOpts,
		Logger:        log,
	})

	log.WithFields(logrus.Fields{
		"files":         len(files),
		"location":      loc.String(),
		"normalizeZone": cfg.GetNormalizeZone(),
		"variables":     len(variables),
	}).Debug("starting run")

	summary := runFiles(r, files, formatter, cfg.GetBail())

	if flushable, ok := formatter.(output.Flushable); ok {
		if err := flushable.Flush(summary.duration); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	if openFlag {
		openReport(cmd, outputFileFlag)
	}

	if !watchFlag {
		if code := exitCodeFor(summary.parseErrors, summary.failed); code != ExitSuccess {
			os.Exit(code)
		}
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				formatter.FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			watchedDirs[dir] = true
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() && !watchedDirs[path] {
					_ = watcher.Add(path)
					watchedDirs[path] = true
				}
				return nil
			})
		}
	}
	log.WithField("dirs", len(watchedDirs)).Debug("watching")

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	rerun := newDebouncer(WatchDebounceDelay)
	defer rerun.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// JSON payloads referenced by cases count as inputs too.
			if event.Has(fsnotify.Write) && (isCaseFile(event.Name) || filepath.Ext(event.Name) == ".json") {
				log.WithField("file", event.Name).Debug("change detected")
				rerun.Trigger(event.Name)
			}

		case changed := <-rerun.C():
			fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running cases...\n\n", changed)

			// Accumulating formatters need fresh state
			formatter = newFormatter(cfg, outWriter)
			summary := runFiles(r, files, formatter, cfg.GetBail())
			if flushable, ok := formatter.(output.Flushable); ok {
				_ = flushable.Flush(summary.duration)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

// debouncer coalesces bursts of change events into one re-run request.
// Requests arrive on C, so only the watch loop touches the formatter.
type debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
	c     chan string
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, c: make(chan string, 1)}
}

// Trigger restarts the delay; the last name wins.
func (d *debouncer) Trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		select {
		case d.c <- name:
		default:
		}
	})
}

func (d *debouncer) C() <-chan string {
	return d.c
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// runSummary totals one pass over the case files.
type runSummary struct {
	passed      int
	failed      int
	parseErrors int
	duration    time.Duration
}

// runFiles evaluates files in order. A file that cannot be parsed counts as a
// parse error, not as a failed case.
func runFiles(r *runner.Runner, files []string, formatter output.Formatter, bail bool) runSummary {
	var summary runSummary
	start := time.Now()

	for _, file := range files {
		result, err := r.RunFile(file)
		if err != nil {
			formatter.FormatError(err)
			summary.parseErrors++
			if bail {
				break
			}
			continue
		}

		formatter.FormatResult(result)
		summary.passed += result.Passed
		summary.failed += result.Failed

		if bail && result.Failed > 0 {
			break
		}
	}

	summary.duration = time.Since(start)
	return summary
}

// exitCodeFor picks the process exit code; parse errors win over failed cases.
func exitCodeFor(parseErrors, failed int) int {
	switch {
	case parseErrors > 0:
		return ExitParseError
	case failed > 0:
		return ExitTestFailure
	default:
		return ExitSuccess
	}
}

func reportExtension(cfg *config.Config) string {
	if len(cfg.Reporters) == 0 {
		return ".txt"
	}
	switch strings.ToLower(cfg.Reporters[0]) {
	case "json":
		return ".json"
	case "junit":
		return ".xml"
	case "tap":
		return ".tap"
	case "html":
		return ".html"
	default:
		return ".txt"
	}
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && isCaseFile(path) && !isConfigFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			if isCaseFile(arg) {
				files = append(files, arg)
			}
		}
	}

	return files, nil
}

func isCaseFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

func isConfigFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range config.ConfigFilenames {
		if base == name {
			return true
		}
	}
	return false
}

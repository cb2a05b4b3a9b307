package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/hitassert/packages/assert"
)

// Config represents the hitassert configuration
type Config struct {
	TimeFormat    string   `json:"timeFormat,omitempty" yaml:"timeFormat,omitempty"`       // iso, rfc3339, rfc3339nano or a Go layout
	Location      string   `json:"location,omitempty" yaml:"location,omitempty"`           // zone for timestamps without offset
	NormalizeZone *bool    `json:"normalizeZone,omitempty" yaml:"normalizeZone,omitempty"` // compare masked fields in Location
	FailFast      *bool    `json:"failFast,omitempty" yaml:"failFast,omitempty"`
	Reporters     []string `json:"reporters,omitempty" yaml:"reporters,omitempty"` // Output reporters
	OutputDir     string   `json:"outputDir,omitempty" yaml:"outputDir,omitempty"` // Directory for output files
	Bail          *bool    `json:"bail,omitempty" yaml:"bail,omitempty"`
	Verbose       *bool    `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	NoColor       *bool    `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNormalizeZone returns the zone normalization setting, defaulting to false
func (c *Config) GetNormalizeZone() bool {
	return getBool(c.NormalizeZone, false)
}

// GetFailFast returns the fail fast setting, defaulting to false
func (c *Config) GetFailFast() bool {
	return getBool(c.FailFast, false)
}

// GetBail reports whether a run stops at the first failing case. Evaluation
// never aborts a chain, so failFast stops the run the same way.
func (c *Config) GetBail() bool {
	return getBool(c.Bail, false) || c.GetFailFast()
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// Loc returns the configured location, UTC when none is set.
func (c *Config) Loc() (*time.Location, error) {
	if c.Location == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return loc, nil
}

// TimeLayout returns the Go layout for TimeFormat. An empty layout means
// minimal ISO-8601.
func (c *Config) TimeLayout() string {
	switch strings.ToLower(c.TimeFormat) {
	case "", "iso":
		return ""
	case "rfc3339":
		return time.RFC3339
	case "rfc3339nano":
		return time.RFC3339Nano
	default:
		return c.TimeFormat
	}
}

// AssertOptions turns the configuration into options for assertion chains.
func (c *Config) AssertOptions() ([]assert.Option, error) {
	var opts []assert.Option
	if layout := c.TimeLayout(); layout != "" {
		opts = append(opts, assert.WithTimeLayout(layout))
	}
	if c.GetFailFast() {
		opts = append(opts, assert.WithFailFast())
	}
	if c.GetNormalizeZone() {
		loc, err := c.Loc()
		if err != nil {
			return nil, err
		}
		opts = append(opts, assert.WithCompareLocation(loc))
	}
	return opts, nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".hitassert.json",
	"hitassert.json",
	".hitassert.yaml",
	"hitassert.yaml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	path := FindConfig(dir)
	if path == "" {
		return DefaultConfig(), nil
	}
	return loadConfigFromFile(path)
}

// FindConfig returns the first config file present in dir, or "".
func FindConfig(dir string) string {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}
	return ""
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := config.Loc(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.TimeFormat != "" {
		result.TimeFormat = other.TimeFormat
	}
	if other.Location != "" {
		result.Location = other.Location
	}
	if other.OutputDir != "" {
		result.OutputDir = other.OutputDir
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NormalizeZone != nil {
		result.NormalizeZone = other.NormalizeZone
	}
	if other.FailFast != nil {
		result.FailFast = other.FailFast
	}
	if other.Bail != nil {
		result.Bail = other.Bail
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Reporters) > 0 {
		result.Reporters = other.Reporters
	}

	return &result
}

// SaveConfig saves the configuration to a file, as YAML when path ends in
// .yaml or .yml and as JSON otherwise.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

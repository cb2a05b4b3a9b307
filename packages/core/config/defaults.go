package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		TimeFormat:    "iso",
		Location:      "UTC",
		NormalizeZone: BoolPtr(false),
		FailFast:      BoolPtr(false),
		Reporters:     []string{"console"},
		OutputDir:     "",
		Bail:          BoolPtr(false),
		Verbose:       BoolPtr(false),
		NoColor:       BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.TimeFormat == defaults.TimeFormat &&
		c.Location == defaults.Location &&
		c.GetNormalizeZone() == defaults.GetNormalizeZone() &&
		c.GetFailFast() == defaults.GetFailFast() &&
		len(c.Reporters) == 1 && c.Reporters[0] == defaults.Reporters[0] &&
		c.OutputDir == defaults.OutputDir &&
		c.GetBail() == defaults.GetBail() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}

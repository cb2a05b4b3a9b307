// Package config handles configuration loading and management for hitassert.
//
// It provides functionality for:
//   - Loading configuration from .hitassert.json or .hitassert.yaml files
//   - Default configuration values
//   - Turning configuration into assertion options
package config

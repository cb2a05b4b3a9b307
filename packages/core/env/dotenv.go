package env

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads KEY=value pairs from .env files, later files winning.
// Nothing is exported to the process environment.
func LoadDotEnv(paths ...string) (map[string]string, error) {
	if len(paths) == 0 {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	return vars, nil
}

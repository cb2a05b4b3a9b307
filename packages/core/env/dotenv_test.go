package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDotEnv(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name:     "simple pair",
			content:  "CUTOFF=2000-01-01T00:00:00Z",
			expected: map[string]string{"CUTOFF": "2000-01-01T00:00:00Z"},
		},
		{
			name:     "several pairs",
			content:  "A=1\nB=2\nC=3",
			expected: map[string]string{"A": "1", "B": "2", "C": "3"},
		},
		{
			name:     "double quoted",
			content:  `ZONE="Europe/Paris"`,
			expected: map[string]string{"ZONE": "Europe/Paris"},
		},
		{
			name:     "single quoted",
			content:  `DAY='2000-01-01 00:00'`,
			expected: map[string]string{"DAY": "2000-01-01 00:00"},
		},
		{
			name:     "comments and blank lines",
			content:  "# deadline\n\nDEADLINE=2000-01-02\n",
			expected: map[string]string{"DEADLINE": "2000-01-02"},
		},
		{
			name:     "export prefix",
			content:  "export DEADLINE=2000-01-02",
			expected: map[string]string{"DEADLINE": "2000-01-02"},
		},
		{
			name:     "value containing equals",
			content:  "EXPR=date(a=b, c)",
			expected: map[string]string{"EXPR": "date(a=b, c)"},
		},
		{
			name:     "inline comment stripped",
			content:  "DAY=2000-01-01 # first",
			expected: map[string]string{"DAY": "2000-01-01"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LoadDotEnv(writeEnv(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoadDotEnvLaterFilesWin(t *testing.T) {
	base := writeEnv(t, "DAY=2000-01-01\nZONE=UTC")
	local := writeEnv(t, "DAY=2000-01-02")

	result, err := LoadDotEnv(base, local)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"DAY": "2000-01-02", "ZONE": "UTC"}, result)
}

func TestLoadDotEnvNoFiles(t *testing.T) {
	result, err := LoadDotEnv()
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestLoadDotEnvUnterminatedQuote(t *testing.T) {
	_, err := LoadDotEnv(writeEnv(t, `DAY="2000-01-01`))
	assert.Error(t, err)
}

func TestLoadDotEnvFileNotFound(t *testing.T) {
	_, err := LoadDotEnv("/nonexistent/path/.env")
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LEDGER_CSV_FILE", "LEDGER_CURRENCY", "LEDGER_OUTPUT", "LEDGER_LOG_LEVEL", "LEDGER_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, &Config{
		CSVFile:   "data.csv",
		Currency:  "$",
		Output:    OutputText,
		LogLevel:  "info",
		LogFormat: LogFormatJSON,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_CSV_FILE", "/var/lib/ledger/books.csv")
	t.Setenv("LEDGER_CURRENCY", "€")
	t.Setenv("LEDGER_OUTPUT", "JSON")
	t.Setenv("LEDGER_LOG_LEVEL", "Debug")
	t.Setenv("LEDGER_LOG_FORMAT", "console")

	cfg := FromEnv()

	assert.Equal(t, "/var/lib/ledger/books.csv", cfg.CSVFile)
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatConsole, cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger().GetLevel())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty csv path", func(c *Config) { c.CSVFile = " " }, "csv file path must not be empty"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "invalid output 'xml'"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level 'loud'"},
		{"bad log format", func(c *Config) { c.LogFormat = "yaml" }, "invalid log format 'yaml'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CSVFile: "data.csv", Currency: "$", Output: OutputText, LogLevel: "info", LogFormat: LogFormatJSON}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{CSVFile: "", Output: "xml", LogLevel: "loud", LogFormat: "yaml"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv file path")
	assert.Contains(t, err.Error(), "invalid output")
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LEDGER_CURRENCY")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_CURRENCY=£\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "£", cfg.Currency)
}

func TestLoad_NoDotEnv(t *testing.T) {
	clearEnv(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Currency)
}

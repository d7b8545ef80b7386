package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

type Config struct {
	// Ledger
	CSVFile  string
	Currency string

	// Output
	Output string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		CSVFile:  getEnv("LEDGER_CSV_FILE", "data.csv"),
		Currency: getEnv("LEDGER_CURRENCY", "$"),

		Output: strings.ToLower(getEnv("LEDGER_OUTPUT", OutputText)),

		LogLevel:  strings.ToLower(getEnv("LEDGER_LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LEDGER_LOG_FORMAT", LogFormatJSON)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.CSVFile) == "" {
		problems = append(problems, "csv file path must not be empty")
	}

	if c.Output != OutputText && c.Output != OutputJSON {
		problems = append(problems, fmt.Sprintf("invalid output '%s': must be one of %s, %s", c.Output, OutputText, OutputJSON))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatConsole {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %s, %s", c.LogFormat, LogFormatJSON, LogFormatConsole))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Logger builds the application logger described by the configuration.
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if c.LogFormat == LogFormatConsole {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

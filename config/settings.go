// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Block mode and output format lookup

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/richinex/substrseq/substr"
)

// Environment variable names.
const (
	EnvBlockMode  = "SUBSEQ_BLOCK_MODE"
	EnvMaxWordLen = "SUBSEQ_MAX_WORD_LEN"
	EnvDBPath     = "SUBSEQ_DB_PATH"
	EnvOutput     = "SUBSEQ_OUTPUT"
	EnvLogLevel   = "SUBSEQ_LOG_LEVEL"
)

// Settings holds all application configuration.
type Settings struct {
	Solver  SolverConfig
	Storage StorageConfig
	Output  OutputConfig
}

// SolverConfig holds query evaluation configuration.
type SolverConfig struct {
	Mode       substr.BlockMode
	MaxWordLen int
}

// StorageConfig holds answer cache configuration.
// An empty DBPath disables persistence.
type StorageConfig struct {
	DBPath string
}

// OutputConfig holds output and logging configuration.
type OutputConfig struct {
	Format   string
	LogLevel slog.Level
}

// Supported output formats.
var formats = map[string]bool{
	"text": true,
	"json": true,
}

// New creates settings from environment variables.
// Returns an error if any variable contains an invalid value.
func New() (Settings, error) {
	mode, err := substr.ParseBlockMode(os.Getenv(EnvBlockMode))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid value for %s: %w", EnvBlockMode, err)
	}

	maxWordLen, err := getEnvInt(EnvMaxWordLen, 100000)
	if err != nil {
		return Settings{}, err
	}
	if maxWordLen < 1 {
		return Settings{}, fmt.Errorf("invalid value for %s: must be positive, got %d", EnvMaxWordLen, maxWordLen)
	}

	format, err := ParseFormat(getEnvString(EnvOutput, "text"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid value for %s: %w", EnvOutput, err)
	}

	level, err := ParseLogLevel(getEnvString(EnvLogLevel, "info"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid value for %s: %w", EnvLogLevel, err)
	}

	return Settings{
		Solver: SolverConfig{
			Mode:       mode,
			MaxWordLen: maxWordLen,
		},
		Storage: StorageConfig{
			DBPath: os.Getenv(EnvDBPath),
		},
		Output: OutputConfig{
			Format:   format,
			LogLevel: level,
		},
	}, nil
}

// MustNew creates settings from the environment.
// Panics if environment variables are invalid.
// Use this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// ParseFormat validates an output format name.
func ParseFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !formats[format] {
		return "", fmt.Errorf("unknown output format: %q", format)
	}
	return format, nil
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("unknown log level: %q", level)
	}
	return l, nil
}

// Environment variable helpers with proper error handling

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

package config

import (
	"log/slog"
	"testing"

	"github.com/richinex/substrseq/substr"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{EnvBlockMode, EnvMaxWordLen, EnvDBPath, EnvOutput, EnvLogLevel} {
		t.Setenv(key, "")
	}

	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Solver.Mode != substr.Distinct {
		t.Errorf("expected distinct mode, got %v", settings.Solver.Mode)
	}
	if settings.Solver.MaxWordLen != 100000 {
		t.Errorf("expected max word length 100000, got %d", settings.Solver.MaxWordLen)
	}
	if settings.Storage.DBPath != "" {
		t.Errorf("expected empty DB path, got %q", settings.Storage.DBPath)
	}
	if settings.Output.Format != "text" {
		t.Errorf("expected text format, got %q", settings.Output.Format)
	}
	if settings.Output.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", settings.Output.LogLevel)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvBlockMode, "closed-form")
	t.Setenv(EnvMaxWordLen, "64")
	t.Setenv(EnvDBPath, "/tmp/answers.db")
	t.Setenv(EnvOutput, "JSON")
	t.Setenv(EnvLogLevel, "debug")

	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Solver.Mode != substr.ClosedForm {
		t.Errorf("expected closed-form mode, got %v", settings.Solver.Mode)
	}
	if settings.Solver.MaxWordLen != 64 {
		t.Errorf("expected 64, got %d", settings.Solver.MaxWordLen)
	}
	if settings.Storage.DBPath != "/tmp/answers.db" {
		t.Errorf("unexpected DB path %q", settings.Storage.DBPath)
	}
	if settings.Output.Format != "json" {
		t.Errorf("expected json format, got %q", settings.Output.Format)
	}
	if settings.Output.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", settings.Output.LogLevel)
	}
}

func TestNewWithInvalidEnvVar(t *testing.T) {
	tests := []struct {
		key string
		val string
	}{
		{EnvBlockMode, "sorted"},
		{EnvMaxWordLen, "not-a-number"},
		{EnvMaxWordLen, "0"},
		{EnvOutput, "xml"},
		{EnvLogLevel, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := New(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	t.Setenv(EnvOutput, "xml")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid output format")
		}
	}()
	MustNew()
}

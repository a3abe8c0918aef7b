package common

import (
	"path/filepath"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("debug")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.ILogger == nil {
		t.Fatal("NewLogger returned logger with nil ILogger")
	}
}

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("NewSilentLogger returned nil")
	}
	// Must not panic or write anywhere visible.
	logger.Info().Str("key", "value").Msg("discarded")
	logger.Error().Msg("also discarded")
}

func TestNewLoggerFromConfig_Defaults(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{})
	if logger == nil {
		t.Fatal("NewLoggerFromConfig returned nil for empty config")
	}
	logger.Info().Msg("default level and console output apply")
}

func TestNewLoggerFromConfig_FileWriter(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{
		Level:    "info",
		Outputs:  []string{"file"},
		FilePath: filepath.Join(t.TempDir(), "gateway.log"),
	})
	if logger == nil {
		t.Fatal("NewLoggerFromConfig returned nil for file config")
	}
	logger.Info().Msg("file writer accepts events")
}

func TestLoggerFluentAPI(t *testing.T) {
	logger := NewSilentLogger()

	logger.Debug().Str("tool", "create_goal").Msg("debug event")
	logger.Info().Int("count", 3).Msg("info event")
	logger.Warn().Msg("warn event")
	logger.Error().Msgf("formatted %s", "event")
}

func TestWithCorrelationId(t *testing.T) {
	logger := NewSilentLogger()
	correlated := logger.WithCorrelationId("abc-123")

	if correlated == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	if correlated == logger {
		t.Error("WithCorrelationId must return a new Logger instance")
	}
	correlated.Info().Msg("correlated event")
	// The original is untouched and still usable.
	logger.Info().Msg("uncorrelated event")
}

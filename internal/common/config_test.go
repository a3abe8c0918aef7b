package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Name != "Goaltrail-MCP" {
		t.Errorf("Expected server name Goaltrail-MCP, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "4343" {
		t.Errorf("Expected default port 4343, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Logging.Level)
	}
	if len(cfg.Logging.Outputs) != 1 || cfg.Logging.Outputs[0] != "console" {
		t.Errorf("Expected default outputs [console], got %v", cfg.Logging.Outputs)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Missing config file must not be an error: %v", err)
	}
	if cfg.Server.Port != "4343" {
		t.Errorf("Expected default port with missing file, got %s", cfg.Server.Port)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Empty path must not be an error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfig_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaltrail-mcp.toml")
	content := `
[server]
name = "Goaltrail-Dev"
port = "9090"

[logging]
level = "debug"
outputs = ["console", "file"]
file_path = "logs/dev.log"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.Name != "Goaltrail-Dev" {
		t.Errorf("Expected server name Goaltrail-Dev, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Logging.Level)
	}
	if len(cfg.Logging.Outputs) != 2 {
		t.Errorf("Expected two outputs, got %v", cfg.Logging.Outputs)
	}
	if cfg.Logging.FilePath != "logs/dev.log" {
		t.Errorf("Expected file path logs/dev.log, got %s", cfg.Logging.FilePath)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.Logging.Level)
	}
	if cfg.Server.Port != "4343" {
		t.Errorf("Unset sections keep defaults, got port %s", cfg.Server.Port)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[server\nname ="), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GOALTRAIL_LOG_LEVEL", "trace")
	t.Setenv("GOALTRAIL_LOG_FILE", "/tmp/override.log")
	t.Setenv("GOALTRAIL_MCP_PORT", "7777")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Logging.Level != "trace" {
		t.Errorf("Expected env-overridden level trace, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.FilePath != "/tmp/override.log" {
		t.Errorf("Expected env-overridden file path, got %s", cfg.Logging.FilePath)
	}
	if cfg.Server.Port != "7777" {
		t.Errorf("Expected env-overridden port 7777, got %s", cfg.Server.Port)
	}
}

func TestLoadConfig_EnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaltrail-mcp.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("GOALTRAIL_LOG_LEVEL", "error")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Env override must beat file value, got %s", cfg.Logging.Level)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/gitauth/pkg/config"
	"github.com/goliatone/gitauth/pkg/gitutil"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func mkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), `
repository_url: "git@gitlab.com:o/r.git"

output:
  redact: true

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.RepositoryURL != "git@gitlab.com:o/r.git" {
		t.Errorf("Expected repository URL 'git@gitlab.com:o/r.git', got '%s'", cfg.RepositoryURL)
	}
	if !cfg.Output.Redact {
		t.Error("Expected redact to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected log format 'json', got '%s'", cfg.Logging.Format)
	}
	if cfg.Credential != nil {
		t.Errorf("Expected no credential from file, got %+v", cfg.Credential)
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "\n")

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.RepositoryURL != "" || cfg.Logging.Level != "" {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.yaml"),
			wantMsg: "read config file",
		},
		{
			name:    "unknown field",
			path:    writeConfigFile(t, t.TempDir(), "credentials:\n  token: secret\n"),
			wantMsg: "parse config file",
		},
		{
			name:    "invalid yaml",
			path:    writeConfigFile(t, t.TempDir(), "logging: [unclosed\n"),
			wantMsg: "parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFromFile(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	lookup := gitutil.MapLookup(map[string]string{"XDG_CONFIG_HOME": "/xdg"})
	if got, want := config.DefaultConfigPath(lookup), filepath.Join("/xdg", "gitauth", "config.yaml"); got != want {
		t.Errorf("DefaultConfigPath() = %v, want %v", got, want)
	}

	got := config.DefaultConfigPath(gitutil.MapLookup(nil))
	if !strings.HasSuffix(got, filepath.Join(".config", "gitauth", "config.yaml")) {
		t.Errorf("DefaultConfigPath() = %v, want ~/.config/gitauth/config.yaml", got)
	}
}

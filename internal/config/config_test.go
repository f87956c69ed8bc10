package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with no config file set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Expected default addr, got %s", cfg.Addr())
	}
	if cfg.Upstream.URL != "http://127.0.0.1:5000" {
		t.Errorf("Unexpected upstream %s", cfg.Upstream.URL)
	}
	if cfg.Upstream.BreakerFailures != 5 || cfg.Upstream.BreakerTimeout != 30*time.Second {
		t.Errorf("Unexpected breaker defaults %+v", cfg.Upstream)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Unexpected CORS origins %v", cfg.Security.CORSOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DEVSERVER_PORT", "9090")
	t.Setenv("UPSTREAM_URL", "http://backend:8000")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.URL != "http://backend:8000" {
		t.Errorf("Expected upstream override, got %s", cfg.Upstream.URL)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Upstream.Timeout)
	}
	if strings.Join(cfg.Security.CORSOrigins, "|") != "http://a.test|http://b.test" {
		t.Errorf("Expected split origins, got %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	body := "server:\n  static_dir: /srv/site\nupstream:\n  url: http://flask:5000\n  breaker_failures: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("UPSTREAM_URL", "http://env-wins:5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.StaticDir != "/srv/site" {
		t.Errorf("Expected static dir from file, got %s", cfg.Server.StaticDir)
	}
	if cfg.Upstream.BreakerFailures != 2 {
		t.Errorf("Expected breaker failures from file, got %d", cfg.Upstream.BreakerFailures)
	}
	if cfg.Upstream.URL != "http://env-wins:5000" {
		t.Errorf("Expected environment to win over file, got %s", cfg.Upstream.URL)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad upstream", "UPSTREAM_URL", "not a url"},
		{"bad format", "LOG_FORMAT", "xml"},
		{"bad port", "DEVSERVER_PORT", "70000"},
		{"zero breaker", "BREAKER_FAILURES", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestEnvTransformFunc_IgnoresUnknown(t *testing.T) {
	if got := envTransformFunc("HOME"); got != "" {
		t.Errorf("Expected unknown variable to be skipped, got %q", got)
	}
	if got := envTransformFunc("UPSTREAM_URL"); got != "upstream.url" {
		t.Errorf("Expected upstream.url, got %q", got)
	}
}

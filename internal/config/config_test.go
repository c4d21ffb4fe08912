package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/cocktaildb"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvTimeout, EnvLogLevel, EnvRequestsPerMinute} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults %#v", cfg, Default())
	}
	if cfg.BaseURL != cocktaildb.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, cocktaildb.DefaultBaseURL)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	dir := filepath.Join(home, ".config", "cocktaildb")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`log_level = "warn"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
base_url = "  http://127.0.0.1:9999/api/json/v1/1/  "
timeout = " 3s "
user_agent = " bar-tab/2.0 "
requests_per_minute = 30.0
log_level = " DEBUG "
poll_interval = "1m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		BaseURL:           "http://127.0.0.1:9999/api/json/v1/1/",
		Timeout:           3 * time.Second,
		UserAgent:         "bar-tab/2.0",
		RequestsPerMinute: 30,
		LogLevel:          "debug",
		PollInterval:      time.Minute,
	}
	if cfg != want {
		t.Fatalf("cfg = %#v, want %#v", cfg, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
base_url = "   "
timeout = ""
log_level = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	clearEnv(t)
	cases := map[string]string{
		"toml":     `base_url = [`,
		"timeout":  `timeout = "soon"`,
		"negative": `timeout = "-1s"`,
		"rpm":      `requests_per_minute = -5.0`,
		"poll":     `poll_interval = "often"`,
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: Load returned nil error, want error", name)
		}
	}

	_, err := Load(writeConfig(t, `base_url = [`))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want it to mention parse config", err)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
base_url = "http://file.example/api/"
timeout = "3s"
log_level = "warn"
`)
	t.Setenv(EnvBaseURL, "http://env.example/api/")
	t.Setenv(EnvTimeout, "750ms")
	t.Setenv(EnvLogLevel, "Debug")
	t.Setenv(EnvRequestsPerMinute, "12.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://env.example/api/" || cfg.Timeout != 750*time.Millisecond {
		t.Fatalf("env not applied: %#v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.RequestsPerMinute != 12.5 {
		t.Fatalf("env not applied: %#v", cfg)
	}
}

func TestLoad_InvalidEnvironmentFails(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRequestsPerMinute, "lots")
	if _, err := Load(writeConfig(t, ``)); err == nil {
		t.Fatalf("Load returned nil error, want error")
	}

	t.Setenv(EnvRequestsPerMinute, "")
	t.Setenv(EnvTimeout, "later")
	if _, err := Load(writeConfig(t, ``)); err == nil {
		t.Fatalf("Load returned nil error, want error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv on missing file returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("COCKTAILDB_LOG_LEVEL=error\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// godotenv does not override variables that are already set, and
	// t.Setenv above left it set to "", so unset it first.
	os.Unsetenv(EnvLogLevel)
	t.Cleanup(func() { os.Unsetenv(EnvLogLevel) })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv returned error: %v", err)
	}
	cfg, err := Load(writeConfig(t, ``))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("LogLevel = %q, want error", cfg.LogLevel)
	}
}

func TestClientOptions_BuildClient(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "http://127.0.0.1:1/api/json/v1/1/"
	c, err := cocktaildb.NewClient(cfg.ClientOptions()...)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.BaseURL() != cfg.BaseURL {
		t.Fatalf("BaseURL = %q, want %q", c.BaseURL(), cfg.BaseURL)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/cocktaildb"
)

// Config captures the settings the CLI and browser need to build a client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerMinute float64
	LogLevel          string
	PollInterval      time.Duration
}

const (
	defaultConfigPath   = "~/.config/cocktaildb/config.toml"
	defaultTimeout      = 10 * time.Second
	defaultLogLevel     = "info"
	defaultPollInterval = 30 * time.Second
)

// Environment variables that override the file.
const (
	EnvBaseURL           = "COCKTAILDB_BASE_URL"
	EnvTimeout           = "COCKTAILDB_TIMEOUT"
	EnvLogLevel          = "COCKTAILDB_LOG_LEVEL"
	EnvRequestsPerMinute = "COCKTAILDB_REQUESTS_PER_MINUTE"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:      cocktaildb.DefaultBaseURL,
		Timeout:      defaultTimeout,
		LogLevel:     defaultLogLevel,
		PollInterval: defaultPollInterval,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := parseFile(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from path (".env" when empty) into the
// process environment. A missing file is not an error; variables already
// set win.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseFile(r io.Reader, cfg *Config) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL           string  `toml:"base_url"`
		Timeout           string  `toml:"timeout"`
		UserAgent         string  `toml:"user_agent"`
		RequestsPerMinute float64 `toml:"requests_per_minute"`
		LogLevel          string  `toml:"log_level"`
		PollInterval      string  `toml:"poll_interval"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := parseDuration("timeout", v)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	if raw.RequestsPerMinute < 0 {
		return fmt.Errorf("parse config: requests_per_minute %v is negative", raw.RequestsPerMinute)
	}
	cfg.RequestsPerMinute = raw.RequestsPerMinute
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.PollInterval); v != "" {
		d, err := parseDuration("poll_interval", v)
		if err != nil {
			return err
		}
		if d > 0 {
			cfg.PollInterval = d
		}
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookupTrimmed(lookup, EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookupTrimmed(lookup, EnvTimeout); ok {
		d, err := parseDuration(EnvTimeout, v)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	if v, ok := lookupTrimmed(lookup, EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvRequestsPerMinute); ok {
		rpm, err := strconv.ParseFloat(v, 64)
		if err != nil || rpm < 0 {
			return fmt.Errorf("parse %s: invalid value %q", EnvRequestsPerMinute, v)
		}
		cfg.RequestsPerMinute = rpm
	}
	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func parseDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse %s: %v is negative", name, d)
	}
	return d, nil
}

// ClientOptions translates the config into client options.
func (c Config) ClientOptions() []cocktaildb.Option {
	return []cocktaildb.Option{
		cocktaildb.WithBaseURL(c.BaseURL),
		cocktaildb.WithTimeout(c.Timeout),
		cocktaildb.WithUserAgent(c.UserAgent),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

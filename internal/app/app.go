package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/five82/cocktaildb"
	"github.com/five82/cocktaildb/internal/config"
	"github.com/five82/cocktaildb/internal/metrics"
	"github.com/five82/cocktaildb/internal/prefs"
	"github.com/five82/cocktaildb/internal/state"
	"github.com/five82/cocktaildb/internal/transport"
	"github.com/five82/cocktaildb/internal/ui"
)

// Options configure a browsing session.
type Options struct {
	Config      config.Config
	PrefsPath   string // empty uses default ~/.config/cocktaildb/prefs.toml
	MetricsAddr string // empty disables the /metrics listener
	LogPath     string // empty uses default ~/.cache/cocktaildb/browse.log
}

// NewClient builds the API client described by cfg. A nil reg leaves the
// transport uninstrumented.
func NewClient(cfg config.Config, logger cocktaildb.Logger, reg prometheus.Registerer) (*cocktaildb.Client, error) {
	rt, err := transport.New(transport.Options{
		RequestsPerMinute: cfg.RequestsPerMinute,
		Registerer:        reg,
	})
	if err != nil {
		return nil, fmt.Errorf("build transport: %w", err)
	}

	opts := []cocktaildb.Option{cocktaildb.WithHTTPClient(&http.Client{Transport: rt})}
	opts = append(opts, cfg.ClientOptions()...)
	opts = append(opts, cocktaildb.WithLogger(logger))

	client, err := cocktaildb.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("init cocktaildb client: %w", err)
	}
	return client, nil
}

// Run boots the browser TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	logPath, err := resolveLogPath(opts.LogPath)
	if err != nil {
		return err
	}
	logFile, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	level, err := log.ParseLevel(opts.Config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := &log.Logger{Handler: text.New(logFile), Level: level}
	logger.WithField("base_url", opts.Config.BaseURL).Info("browse session started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reg *prometheus.Registry
	if opts.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		go func() {
			if err := metrics.Serve(ctx, opts.MetricsAddr, reg); err != nil {
				logger.WithError(err).Warn("metrics listener stopped")
			}
		}()
	}

	var registerer prometheus.Registerer
	if reg != nil {
		registerer = reg
	}
	client, err := NewClient(opts.Config, logger, registerer)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	interval := opts.Config.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	StartPoller(ctx, store, client, interval)

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		LastQuery: userPrefs.LastQuery,
		LastMode:  userPrefs.LastMode,
		PrefsPath: opts.PrefsPath,
		LogPath:   logPath,
	})
}

func resolveLogPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return filepath.Join(dir, "cocktaildb", "browse.log"), nil
}

// openLog opens the session log for appending, creating its directory.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	return f, nil
}

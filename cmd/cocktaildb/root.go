package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/five82/cocktaildb"
	"github.com/five82/cocktaildb/internal/app"
	"github.com/five82/cocktaildb/internal/config"
)

// errNoResults marks an operation that came back empty.
var errNoResults = errors.New("no results")

// session holds the global flags and what PersistentPreRunE builds from them.
type session struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	envFile    string
	logLevel   string
	jsonOutput bool

	cfg    config.Config
	logger *log.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	s := &session{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "cocktaildb",
		Short:         "Query TheCocktailDB from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "config file (default ~/.config/cocktaildb/config.toml)")
	flags.StringVar(&s.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	flags.StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&s.jsonOutput, "json", false, "print raw API records as indented JSON")

	root.AddCommand(
		searchCommand(s),
		letterCommand(s),
		ingredientCommand(s),
		drinkCommand(s),
		ingredientIDCommand(s),
		randomCommand(s),
		filterCommand(s),
		listCommand(s),
		browseCommand(s),
	)
	return root
}

func (s *session) setup() error {
	if err := config.LoadDotEnv(s.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(s.logLevel); v != "" {
		cfg.LogLevel = v
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	s.cfg = cfg
	s.logger = &log.Logger{Handler: cli.New(s.stderr), Level: level}
	log.Log = s.logger
	s.logger.WithField("base_url", cfg.BaseURL).Debug("config loaded")
	return nil
}

func (s *session) client() (*cocktaildb.Client, error) {
	return app.NewClient(s.cfg, s.logger, nil)
}

func (s *session) printer() printer {
	return printer{out: s.stdout, json: s.jsonOutput}
}

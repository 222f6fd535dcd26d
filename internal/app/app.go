// Package app wires configuration, logging and the textbuf packages into the
// operations behind the command line.
package app

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dshills/textbuf/internal/config"
	"github.com/dshills/textbuf/internal/plugin/api"
)

// Options configures the application.
type Options struct {
	// ConfigPaths are configuration files, applied in order. Missing files
	// are skipped.
	ConfigPaths []string

	// ConfigOptions are passed to config.Load.
	ConfigOptions []config.LoadOption

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// NoColor disables colored log output.
	NoColor bool

	// Stdout receives command output and script prints. Defaults to
	// os.Stdout.
	Stdout io.Writer

	// Stderr receives log output. Defaults to os.Stderr.
	Stderr io.Writer
}

// Application holds the state shared by a single command invocation.
type Application struct {
	cfg    *config.Config
	logger *Logger
	runID  string
	stdout io.Writer
	module *api.Module

	// afterRun is called after each script run in Watch.
	afterRun func(err error)
}

// New loads configuration and creates an Application.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPaths, opts.ConfigOptions...)
	if err != nil {
		return nil, NewComponentError("config", "load", err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, NewComponentError("config", "log level", err)
		}
	}
	if opts.NoColor {
		cfg.Logging.NoColor = true
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runID := uuid.NewString()
	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Logging.Level),
		Output: stderr,
		Prefix: "textbuf",
		Color:  !cfg.Logging.NoColor,
	}).WithField("run", runID)

	return &Application{
		cfg:    cfg,
		logger: logger,
		runID:  runID,
		stdout: stdout,
		module: api.NewModule(
			cfg.BufferOptions(),
			cfg.TokenizerOptions(),
			api.WithMaxCapacity(cfg.Script.MaxCapacity),
		),
	}, nil
}

// Config returns the loaded configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// RunID returns the id attached to every log line of this invocation.
func (a *Application) RunID() string {
	return a.runID
}

package config

import (
	"fmt"
	"log/slog"

	"github.com/dshills/calcsettings/internal/config/loader"
	"github.com/dshills/calcsettings/internal/config/registry"
)

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	fs        loader.FileSystem
	env       bool
	envPrefix string
	dotEnv    string
	environ   func() []string
	logger    *slog.Logger
}

// WithFS sets the file system used for the options and .env files.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(c *loadConfig) {
		c.fs = fsys
	}
}

// WithEnv applies environment variables with the given prefix
// (loader.DefaultEnvPrefix when empty) on top of the file.
func WithEnv(prefix string) LoadOption {
	return func(c *loadConfig) {
		c.env = true
		if prefix != "" {
			c.envPrefix = prefix
		}
	}
}

// WithDotEnv reads a .env file below the process environment.
// Implies WithEnv.
func WithDotEnv(path string) LoadOption {
	return func(c *loadConfig) {
		c.env = true
		c.dotEnv = path
	}
}

// WithEnviron replaces os.Environ as the source of environment variables.
func WithEnviron(environ func() []string) LoadOption {
	return func(c *loadConfig) {
		c.environ = environ
	}
}

// WithLogger sets the logger for skipped environment variables.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Load builds Options from the registry defaults, the options file at path
// (skipped when path is empty or the file does not exist) and, when
// enabled, the environment. Environment variables carrying the prefix but
// naming no known option are skipped.
//
// Invalid entries are reported together as a joined error; the returned
// Options still carry every valid entry.
func Load(path string, opts ...LoadOption) (Options, error) {
	cfg := loadConfig{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	o := DefaultOptions()

	if path != "" {
		fl, err := loader.ForPath(cfg.fs, path)
		if err != nil {
			return o, err
		}
		data, err := fl.Load()
		if err != nil {
			return o, err
		}
		if err := o.Apply(data); err != nil {
			return o, fmt.Errorf("applying %s: %w", path, err)
		}
	}

	if cfg.env {
		envOpts := []loader.EnvOption{loader.WithEnvFS(cfg.fs)}
		if cfg.dotEnv != "" {
			envOpts = append(envOpts, loader.WithDotEnv(cfg.dotEnv))
		}
		if cfg.environ != nil {
			envOpts = append(envOpts, loader.WithEnviron(cfg.environ))
		}
		data, err := loader.NewEnvLoader(cfg.envPrefix, envOpts...).Load()
		if err != nil {
			return o, err
		}
		if err := o.Apply(knownOptions(data, cfg.logger)); err != nil {
			return o, fmt.Errorf("applying environment: %w", err)
		}
	}

	return o, nil
}

// knownOptions drops environment entries that map to no registered option,
// such as CALC_HOME.
func knownOptions(data map[string]any, logger *slog.Logger) map[string]any {
	reg := registry.Default()
	flat := loader.Flatten(data)
	for _, path := range loader.SortedPaths(flat) {
		if !reg.Has(path) {
			logger.Debug("ignoring environment variable for unknown option", "path", path)
			delete(flat, path)
		}
	}
	return flat
}

package main

import (
	"log/slog"
	"strings"
	"sync"

	"periscope/internal/cache"
	"periscope/internal/config"
	"periscope/internal/logging"
	"periscope/internal/state"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureState builds the runtime store without a cache handle; commands
// that touch the cache use withCache instead.
func (c *commandContext) ensureState() (*state.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return state.New(cfg, nil), nil
}

// withCache opens the shared cache store for the duration of fn.
func (c *commandContext) withCache(fn func(*cache.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := cache.Open(cfg.Paths.CacheDir)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// ensureLogger builds the process logger from config, falling back to
// defaults when configuration is unavailable.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{}
		if cfg, err := c.ensureConfig(); err == nil {
			opts.Level = cfg.Logging.Level
			opts.Format = cfg.Logging.Format
		}
		logger, err := logging.New(opts)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

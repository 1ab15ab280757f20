package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"packsmith/internal/archive"
	"packsmith/internal/config"
	"packsmith/internal/logging"
	"packsmith/internal/pack"
	"packsmith/internal/workspace"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	sessionOnce sync.Once
	sessionID   string
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

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logging.NewComponentLogger(logger, "cli")
	})
	return c.logger
}

func (c *commandContext) session() string {
	c.sessionOnce.Do(func() {
		c.sessionID = uuid.NewString()
	})
	return c.sessionID
}

func (c *commandContext) loadPack(path string) (*pack.Package, error) {
	return archive.Load(path)
}

// savePack writes the pack back to disk, defaulting to the source path when
// no output override is given.
func (c *commandContext) savePack(p *pack.Package, sourcePath, outputPath string) (string, error) {
	target := strings.TrimSpace(outputPath)
	if target == "" {
		target = sourcePath
	}
	if err := archive.Save(p, target); err != nil {
		return "", err
	}
	return target, nil
}

// recordEdit appends a history row when history is enabled. Failures are
// logged and never fail the command that did the real work.
func (c *commandContext) recordEdit(ctx context.Context, packName, operation, detail string) {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.History.Enabled {
		return
	}
	store, err := workspace.Open(cfg)
	if err != nil {
		c.ensureLogger().Warn("open history store", logging.Error(err))
		return
	}
	defer store.Close()

	if err := store.RecordEdit(ctx, c.session(), packName, operation, detail); err != nil {
		c.ensureLogger().Warn("record edit",
			logging.String("operation", operation),
			logging.Error(err))
	}
}

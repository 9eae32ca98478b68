package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mmcdole/tvshelf/internal/catalog"
	"github.com/mmcdole/tvshelf/internal/config"
	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/log"
	"github.com/mmcdole/tvshelf/internal/session"
	"github.com/mmcdole/tvshelf/internal/store"
	"github.com/mmcdole/tvshelf/internal/watchlist"
)

// commandContext lazily builds the shared dependencies of every subcommand.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger *slog.Logger
	store  *store.Store
	client domain.CatalogClient
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
		cfg, err := config.LoadConfig(path)
		if err != nil {
			c.configErr = fmt.Errorf("failed to load config: %w", err)
			return
		}
		c.config = cfg

		logger, err := log.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = log.NullLogger()
		}
		c.logger = logger.With("session", uuid.NewString())
		slog.SetDefault(c.logger)
	})
	return c.config, c.configErr
}

// open builds the store and catalog client. Callers must call close.
func (c *commandContext) open() error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if c.store != nil {
		return nil
	}

	st, err := store.Open(cfg.Storage.Dir, cfg.Catalog.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	c.store = st

	var client domain.CatalogClient = catalog.NewClient(catalog.Options{
		BaseURL:    cfg.Catalog.BaseURL,
		Timeout:    cfg.Catalog.Timeout,
		MaxRetries: cfg.Catalog.MaxRetries,
		RateLimit:  cfg.Catalog.RateLimit,
		RateBurst:  cfg.Catalog.RateBurst,
	}, c.logger)
	if cfg.Catalog.CacheTTL > 0 {
		client = catalog.NewCached(client, cfg.Catalog.CacheTTL, c.logger)
	}
	c.client = client

	c.logger.Info("opened catalog", "url", cfg.Catalog.BaseURL, "storage", cfg.Storage.Dir)
	return nil
}

func (c *commandContext) close() {
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil {
		c.logger.Warn("failed to close storage", "error", err)
	}
	c.store = nil
}

func (c *commandContext) watchlist() *watchlist.Store {
	return watchlist.Open(c.store, c.config.Storage.WatchlistKey, c.logger)
}

// newController builds a session over the opened dependencies.
// query overrides the configured default when non-empty.
func (c *commandContext) newController(query string, observer session.Observer) *session.Controller {
	if query == "" {
		query = c.config.Search.DefaultQuery
	}
	return session.NewController(c.client, c.watchlist(), session.Options{
		DefaultQuery: query,
		PageSize:     c.config.Search.PageSize,
		Observer:     observer,
	}, c.logger)
}

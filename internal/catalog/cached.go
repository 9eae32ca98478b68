package catalog

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/patrickmn/go-cache"
)

// Cache key prefixes
const (
	prefixSearch   = "search:"
	prefixShow     = "show:"
	prefixEpisodes = "episodes:"
)

// Cached wraps a domain.CatalogClient with an in-memory TTL cache.
// Only successful responses are cached.
type Cached struct {
	next   domain.CatalogClient
	cache  *cache.Cache
	logger *slog.Logger
}

// NewCached wraps next. Entries expire after ttl.
func NewCached(next domain.CatalogClient, ttl time.Duration, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{
		next:   next,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (c *Cached) Search(ctx context.Context, text string) ([]domain.Show, error) {
	key := prefixSearch + strings.ToLower(strings.TrimSpace(text))
	if v, ok := c.cache.Get(key); ok {
		c.logger.Debug("search cache hit", "query", text)
		return slices.Clone(v.([]domain.Show)), nil
	}

	shows, err := c.next.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, slices.Clone(shows))
	return shows, nil
}

func (c *Cached) GetShow(ctx context.Context, id int) (*domain.Show, error) {
	key := prefixShow + strconv.Itoa(id)
	if v, ok := c.cache.Get(key); ok {
		show := v.(domain.Show)
		return &show, nil
	}

	show, err := c.next.GetShow(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, *show)
	return show, nil
}

func (c *Cached) GetEpisodes(ctx context.Context, showID int) ([]domain.Episode, error) {
	key := prefixEpisodes + strconv.Itoa(showID)
	if v, ok := c.cache.Get(key); ok {
		return slices.Clone(v.([]domain.Episode)), nil
	}

	episodes, err := c.next.GetEpisodes(ctx, showID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, slices.Clone(episodes))
	return episodes, nil
}

// Flush drops every cached response
func (c *Cached) Flush() {
	c.cache.Flush()
	c.logger.Info("flushed catalog cache")
}

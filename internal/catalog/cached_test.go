package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCatalog struct {
	searches int
	shows    int
	episodes int
	fail     bool
}

func (c *countingCatalog) Search(_ context.Context, text string) ([]domain.Show, error) {
	c.searches++
	if c.fail {
		return nil, errors.New("boom")
	}
	return []domain.Show{{ID: 1, Name: text}}, nil
}

func (c *countingCatalog) GetShow(_ context.Context, id int) (*domain.Show, error) {
	c.shows++
	return &domain.Show{ID: id, Name: "show"}, nil
}

func (c *countingCatalog) GetEpisodes(_ context.Context, id int) ([]domain.Episode, error) {
	c.episodes++
	return []domain.Episode{{ID: 10, Season: 1, Number: 1}}, nil
}

func TestCachedServesRepeatRequests(t *testing.T) {
	next := &countingCatalog{}
	c := NewCached(next, time.Minute, nil)
	ctx := context.Background()

	first, err := c.Search(ctx, "Friends")
	require.NoError(t, err)
	second, err := c.Search(ctx, " friends")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.searches)

	_, _ = c.GetShow(ctx, 7)
	_, _ = c.GetShow(ctx, 7)
	assert.Equal(t, 1, next.shows)

	_, _ = c.GetEpisodes(ctx, 7)
	_, _ = c.GetEpisodes(ctx, 7)
	assert.Equal(t, 1, next.episodes)

	c.Flush()
	_, _ = c.Search(ctx, "friends")
	assert.Equal(t, 2, next.searches)
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	next := &countingCatalog{fail: true}
	c := NewCached(next, time.Minute, nil)

	_, err := c.Search(context.Background(), "x")
	assert.Error(t, err)

	next.fail = false
	shows, err := c.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, shows, 1)
	assert.Equal(t, 2, next.searches)
}

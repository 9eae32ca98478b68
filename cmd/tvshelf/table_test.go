package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/session"
)

func TestRenderShowsMarksSaved(t *testing.T) {
	shows := []domain.Show{
		{ID: 431, Name: "Friends", Genres: []string{"Comedy"}, Language: "English", Rating: domain.Float64(8.5)},
		{ID: 5, Name: "Friends Again"},
	}

	out := renderShows(shows, func(id int) bool { return id == 431 })
	assert.Contains(t, strings.ToLower(out), "saved")
	assert.Contains(t, out, "Friends Again")
	assert.Contains(t, out, "8.5")
	assert.Equal(t, 1, strings.Count(out, "*"))

	out = renderShows(shows, nil)
	assert.NotContains(t, strings.ToLower(out), "saved")
	assert.NotContains(t, out, "*")
}

func TestRenderSeason(t *testing.T) {
	out := renderSeason(session.Season{Number: 2, Episodes: []domain.Episode{
		{ID: 1, Season: 2, Number: 1, Name: "Return"},
		{ID: 2, Season: 2, Number: 2},
	}})
	assert.Contains(t, out, "S02E01")
	assert.Contains(t, out, "Return")
	assert.Contains(t, out, "S02E02")
}

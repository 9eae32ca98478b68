package filter

import (
	"testing"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func catalog() []domain.Show {
	return []domain.Show{
		{ID: 1, Name: "Friends", Genres: []string{"Comedy", "Romance"}, Language: "English", Rating: domain.Float64(8.5)},
		{ID: 2, Name: "Dark", Genres: []string{"Drama", "Science-Fiction"}, Language: "German", Rating: domain.Float64(8.8)},
		{ID: 3, Name: "Unrated Pilot", Genres: []string{"Comedy"}},
		{ID: 4, Name: "Money Heist", Genres: []string{"Drama", "Crime"}, Language: "Spanish", Rating: domain.Float64(7.9)},
		{ID: 5, Name: "Friends Again", Genres: nil, Language: "English", Rating: domain.Float64(5.1)},
	}
}

func ids(shows []domain.Show) []int {
	out := make([]int, len(shows))
	for i, s := range shows {
		out[i] = s.ID
	}
	return out
}

func TestDeriveOptionsSortedAndDeduplicated(t *testing.T) {
	opts := DeriveOptions(catalog())

	assert.Equal(t, []string{"Comedy", "Crime", "Drama", "Romance", "Science-Fiction"}, opts.Genres)
	assert.Equal(t, []string{"English", "German", "Spanish"}, opts.Languages)
}

func TestDeriveOptionsEmpty(t *testing.T) {
	opts := DeriveOptions(nil)

	assert.Empty(t, opts.Genres)
	assert.Empty(t, opts.Languages)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.FilterSpec
		expected []int
	}{
		{"default passes all", domain.DefaultFilterSpec(), []int{1, 2, 3, 4, 5}},
		{"genre", domain.FilterSpec{Genre: "Comedy", Language: domain.AllOption}, []int{1, 3}},
		{"language", domain.FilterSpec{Genre: domain.AllOption, Language: "English"}, []int{1, 5}},
		{"min rating excludes unrated", domain.FilterSpec{Genre: domain.AllOption, Language: domain.AllOption, MinRating: 8}, []int{1, 2}},
		{"combined", domain.FilterSpec{Genre: "Drama", Language: "Spanish", MinRating: 7}, []int{4}},
		{"no match", domain.FilterSpec{Genre: "Western", Language: domain.AllOption}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(catalog(), tt.spec)))
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	spec := domain.FilterSpec{Genre: "Comedy", Language: domain.AllOption, MinRating: 1}

	once := Apply(catalog(), spec)
	assert.Equal(t, once, Apply(once, spec))
}

func TestMatchOption(t *testing.T) {
	options := []string{"Comedy", "Drama", "Science-Fiction"}

	tests := []struct {
		typed    string
		expected string
		ok       bool
	}{
		{"", domain.AllOption, true},
		{"ALL", domain.AllOption, true},
		{"drama", "Drama", true},
		{"scifi", "Science-Fiction", true},
		{"com", "Comedy", true},
		{"western", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			got, ok := MatchOption(options, tt.typed)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSpecMergeKeepsUnsetFields(t *testing.T) {
	base := FilterSpec{Genre: "Drama", Language: "English", MinRating: 7}

	next := base.Merge(FilterPatch{MinRating: Float64(8)})

	assert.Equal(t, FilterSpec{Genre: "Drama", Language: "English", MinRating: 8}, next)
	assert.Equal(t, 7.0, base.MinRating, "merge must not mutate the receiver")
}

func TestFilterSpecMergeNormalizesValues(t *testing.T) {
	base := FilterSpec{Genre: "Drama", Language: "English", MinRating: 7}

	next := base.Merge(FilterPatch{Genre: String(""), Language: String("Japanese"), MinRating: Float64(-2)})

	assert.Equal(t, AllOption, next.Genre)
	assert.Equal(t, "Japanese", next.Language)
	assert.Zero(t, next.MinRating)

	next = base.Merge(FilterPatch{MinRating: Float64(math.NaN())})
	assert.Zero(t, next.MinRating)
	assert.False(t, math.IsNaN(next.MinRating))

	next = base.Merge(FilterPatch{MinRating: Float64(math.Inf(-1))})
	assert.Zero(t, next.MinRating)
}

func TestDefaultFilterSpec(t *testing.T) {
	assert.True(t, DefaultFilterSpec().IsDefault())
	assert.False(t, DefaultFilterSpec().Merge(FilterPatch{Genre: String("Comedy")}).IsDefault())
}

func TestShowRating(t *testing.T) {
	unrated := Show{ID: 1}
	rated := Show{ID: 2, Rating: Float64(8.25)}

	assert.Zero(t, unrated.RatingOrZero())
	assert.Equal(t, "-", unrated.FormattedRating())
	assert.Equal(t, 8.25, rated.RatingOrZero())
	assert.Equal(t, "8.2", rated.FormattedRating())
}

func TestEpisodeCode(t *testing.T) {
	assert.Equal(t, "S01E05", Episode{Season: 1, Number: 5}.EpisodeCode())
	assert.Equal(t, "S10E12", Episode{Season: 10, Number: 12}.EpisodeCode())
}

package domain

import (
	"fmt"
	"slices"
)

// Show represents a TV series from the remote catalog.
// Identity is ID; a Show is never mutated after it is fetched.
type Show struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Genres      []string `json:"genres"`
	Language    string   `json:"language,omitempty"`    // Empty when the catalog has none
	Rating      *float64 `json:"rating,omitempty"`      // Average rating (0-10), nil when unrated
	ImageURL    string   `json:"imageUrl,omitempty"`    // Poster image
	SummaryHTML string   `json:"summaryHtml,omitempty"` // Synopsis as delivered by the catalog
}

// RatingOrZero returns the rating, treating an unrated show as 0.
func (s Show) RatingOrZero() float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}

// HasGenre reports whether the show is tagged with genre.
func (s Show) HasGenre(genre string) bool {
	return slices.Contains(s.Genres, genre)
}

// FormattedRating returns the rating with one decimal, or "-" when unrated
func (s Show) FormattedRating() string {
	if s.Rating == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *s.Rating)
}

// Episode belongs to exactly one Show and is fetched on demand.
type Episode struct {
	ID     int    `json:"id"`
	Season int    `json:"season"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// EpisodeCode returns the formatted episode code (e.g., "S01E05")
func (e Episode) EpisodeCode() string {
	return fmt.Sprintf("S%02dE%02d", e.Season, e.Number)
}

// Float64 returns a pointer to v. Handy for building ratings and filter patches.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

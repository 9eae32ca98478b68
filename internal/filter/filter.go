// Package filter narrows a search result set locally and derives the
// genre/language choices a user can pick from.
package filter

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/tvshelf/internal/domain"
)

// Options holds the selectable filter values for a result set.
type Options struct {
	Genres    []string
	Languages []string
}

// DeriveOptions collects every genre and every defined language across
// results, deduplicated and sorted ascending.
func DeriveOptions(results []domain.Show) Options {
	genres := make(map[string]struct{})
	languages := make(map[string]struct{})

	for _, s := range results {
		for _, g := range s.Genres {
			genres[g] = struct{}{}
		}
		if s.Language != "" {
			languages[s.Language] = struct{}{}
		}
	}

	return Options{
		Genres:    sortedKeys(genres),
		Languages: sortedKeys(languages),
	}
}

// Apply returns the shows that pass spec, in their original order.
func Apply(results []domain.Show, spec domain.FilterSpec) []domain.Show {
	filtered := make([]domain.Show, 0, len(results))
	for _, s := range results {
		if Matches(s, spec) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Matches reports whether a single show passes spec.
func Matches(s domain.Show, spec domain.FilterSpec) bool {
	if spec.Genre != domain.AllOption && !s.HasGenre(spec.Genre) {
		return false
	}
	if spec.Language != domain.AllOption && s.Language != spec.Language {
		return false
	}
	return s.RatingOrZero() >= spec.MinRating
}

// MatchOption resolves user-typed text to one of options.
// "all" (any case) and empty text resolve to domain.AllOption. A
// case-insensitive exact match wins; otherwise the closest fuzzy match is
// returned. ok is false when nothing matches.
func MatchOption(options []string, typed string) (string, bool) {
	typed = strings.TrimSpace(typed)
	if typed == "" || strings.EqualFold(typed, domain.AllOption) {
		return domain.AllOption, true
	}

	for _, opt := range options {
		if strings.EqualFold(opt, typed) {
			return opt, true
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(typed, options)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

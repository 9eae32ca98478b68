package watchlist

import (
	"strings"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/sahilm/fuzzy"
)

// showNames implements fuzzy.Source over lowercase show names
type showNames []domain.Show

func (n showNames) String(i int) string { return strings.ToLower(n[i].Name) }
func (n showNames) Len() int            { return len(n) }

// Find ranks shows whose names fuzzy-match query, best first.
// An empty query returns shows unchanged.
func Find(shows []domain.Show, query string) []domain.Show {
	query = strings.TrimSpace(query)
	if query == "" {
		return shows
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), showNames(shows))

	results := make([]domain.Show, len(matches))
	for i, m := range matches {
		results[i] = shows[m.Index]
	}
	return results
}

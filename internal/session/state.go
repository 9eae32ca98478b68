// Package session owns the search state machine: query, fetch lifecycle,
// local filters, pagination and the watchlist.
//
// Reduce is the pure core. Controller wraps it, executing persistence
// effects and running catalog fetches whose responses are applied only if
// they belong to the most recent attempt.
package session

import (
	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/paging"
)

// Attempt identifies one fetch. Attempts are issued in increasing order;
// the zero value means no fetch has been issued.
type Attempt uint64

// State is the canonical search session aggregate.
// Slices held by a State are never modified in place.
type State struct {
	Query     string
	Filters   domain.FilterSpec
	Loading   bool
	Error     string // Empty when the last fetch did not fail
	Results   []domain.Show
	Page      int
	PageSize  int
	Watchlist []domain.Show

	// Attempt is the most recently issued fetch attempt
	Attempt Attempt
}

// NewState returns the initial state for a session.
// An unsupported pageSize falls back to paging.DefaultPageSize.
func NewState(query string, pageSize int, watchlist []domain.Show) State {
	if !paging.ValidPageSize(pageSize) {
		pageSize = paging.DefaultPageSize
	}
	if watchlist == nil {
		watchlist = []domain.Show{}
	}
	return State{
		Query:     query,
		Filters:   domain.DefaultFilterSpec(),
		Results:   []domain.Show{},
		Page:      1,
		PageSize:  pageSize,
		Watchlist: watchlist,
	}
}

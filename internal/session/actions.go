package session

import "github.com/mmcdole/tvshelf/internal/domain"

// Action is a state transition request handled by Reduce.
type Action interface {
	action()
}

// SetQuery stores a new query string. It never fetches by itself.
type SetQuery struct{ Query string }

// BeginFetch marks attempt as in flight.
type BeginFetch struct{ Attempt Attempt }

// CompleteFetch delivers the shows found by attempt.
type CompleteFetch struct {
	Attempt Attempt
	Shows   []domain.Show
}

// FailFetch reports that attempt failed with a human-readable message.
type FailFetch struct {
	Attempt Attempt
	Message string
}

// SetFilters merges Patch into the current filters.
type SetFilters struct{ Patch domain.FilterPatch }

// SetPageSize changes the page size. Only paging.PageSizes are accepted.
type SetPageSize struct{ Size int }

// SetPage moves to Page, clamped into the valid range.
type SetPage struct{ Page int }

// AddToWatchlist saves Show unless it is already saved.
type AddToWatchlist struct{ Show domain.Show }

// RemoveFromWatchlist drops the saved show with ID.
type RemoveFromWatchlist struct{ ID int }

// ClearWatchlist drops every saved show.
type ClearWatchlist struct{}

func (SetQuery) action()            {}
func (BeginFetch) action()          {}
func (CompleteFetch) action()       {}
func (FailFetch) action()           {}
func (SetFilters) action()          {}
func (SetPageSize) action()         {}
func (SetPage) action()             {}
func (AddToWatchlist) action()      {}
func (RemoveFromWatchlist) action() {}
func (ClearWatchlist) action()      {}

// Effect is a side effect requested by a transition.
type Effect interface {
	effect()
}

// PersistWatchlist rewrites the stored watchlist with Items.
type PersistWatchlist struct{ Items []domain.Show }

// EraseWatchlist removes the stored watchlist entry.
type EraseWatchlist struct{}

func (PersistWatchlist) effect() {}
func (EraseWatchlist) effect()   {}

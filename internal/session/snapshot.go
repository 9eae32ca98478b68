package session

import (
	"slices"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/filter"
	"github.com/mmcdole/tvshelf/internal/paging"
)

// Status is the single thing a presentation layer should show.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusEmpty
	StatusContent
)

// String returns a human-readable representation of the status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "Loading"
	case StatusError:
		return "Error"
	case StatusEmpty:
		return "Empty"
	case StatusContent:
		return "Content"
	default:
		return "Unknown"
	}
}

// Snapshot is a read-only view of a State plus everything derived from it.
// Callers must not modify its slices.
type Snapshot struct {
	Query     string
	Filters   domain.FilterSpec
	Loading   bool
	Error     string
	Results   []domain.Show
	Page      int
	PageSize  int
	Watchlist []domain.Show

	Options       filter.Options
	FilteredCount int
	TotalPages    int
	Visible       []domain.Show // Shows on the current page
	Status        Status
}

// Snapshot derives the presentation view of s.
func (s State) Snapshot() Snapshot {
	filtered := filter.Apply(s.Results, s.Filters)

	snap := Snapshot{
		Query:         s.Query,
		Filters:       s.Filters,
		Loading:       s.Loading,
		Error:         s.Error,
		Results:       s.Results,
		Page:          s.Page,
		PageSize:      s.PageSize,
		Watchlist:     s.Watchlist,
		Options:       filter.DeriveOptions(s.Results),
		FilteredCount: len(filtered),
		TotalPages:    paging.TotalPages(len(filtered), s.PageSize),
		Visible:       paging.Slice(filtered, s.Page, s.PageSize),
	}

	switch {
	case s.Loading:
		snap.Status = StatusLoading
	case s.Error != "":
		snap.Status = StatusError
	case len(filtered) == 0:
		snap.Status = StatusEmpty
	default:
		snap.Status = StatusContent
	}

	return snap
}

// InWatchlist reports whether a show with id is saved.
func (s Snapshot) InWatchlist(id int) bool {
	return slices.ContainsFunc(s.Watchlist, func(show domain.Show) bool { return show.ID == id })
}

// HasPrev reports whether an earlier page exists.
func (s Snapshot) HasPrev() bool { return s.Page > 1 }

// HasNext reports whether a later page exists.
func (s Snapshot) HasNext() bool { return s.Page < s.TotalPages }

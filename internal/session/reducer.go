package session

import (
	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/filter"
	"github.com/mmcdole/tvshelf/internal/paging"
	"github.com/mmcdole/tvshelf/internal/watchlist"
)

// Outcome is the result of reducing one action.
type Outcome struct {
	State  State
	Effect Effect // nil when the transition has no side effect

	// Applied is false when the action was discarded (stale attempt) or
	// changed nothing.
	Applied bool
}

// Reduce computes the state that follows s after a. It performs no I/O.
func Reduce(s State, a Action) Outcome {
	next := s
	var eff Effect

	switch a := a.(type) {
	case SetQuery:
		if a.Query == s.Query {
			return Outcome{State: s}
		}
		next.Query = a.Query

	case BeginFetch:
		if a.Attempt <= s.Attempt {
			return Outcome{State: s}
		}
		next.Attempt = a.Attempt
		next.Loading = true
		next.Error = ""

	case CompleteFetch:
		if a.Attempt != s.Attempt {
			return Outcome{State: s}
		}
		next.Loading = false
		next.Error = ""
		next.Results = a.Shows
		if next.Results == nil {
			next.Results = []domain.Show{}
		}
		// Every successful fetch counts as a new search, including a retry
		// of the same query.
		next.Page = 1

	case FailFetch:
		if a.Attempt != s.Attempt {
			return Outcome{State: s}
		}
		next.Loading = false
		next.Error = a.Message

	case SetFilters:
		next.Filters = s.Filters.Merge(a.Patch)
		next.Page = 1

	case SetPageSize:
		if !paging.ValidPageSize(a.Size) {
			return Outcome{State: s}
		}
		next.PageSize = a.Size
		next.Page = 1

	case SetPage:
		next.Page = a.Page

	case AddToWatchlist:
		list, added := watchlist.Insert(s.Watchlist, a.Show)
		if !added {
			return Outcome{State: s}
		}
		next.Watchlist = list
		eff = PersistWatchlist{Items: list}

	case RemoveFromWatchlist:
		list, removed := watchlist.Delete(s.Watchlist, a.ID)
		if !removed {
			return Outcome{State: s}
		}
		next.Watchlist = list
		eff = PersistWatchlist{Items: list}

	case ClearWatchlist:
		next.Watchlist = []domain.Show{}
		eff = EraseWatchlist{}

	default:
		return Outcome{State: s}
	}

	next.Page = paging.Clamp(next.Page, len(filter.Apply(next.Results, next.Filters)), next.PageSize)
	return Outcome{State: next, Effect: eff, Applied: true}
}

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/watchlist"
)

// Observer receives a snapshot after every applied transition.
// OnChange is called with the controller locked: it must not block or call
// back into the controller.
type Observer interface {
	OnChange(snap Snapshot)
}

// Options configures a Controller
type Options struct {
	DefaultQuery string
	PageSize     int
	Observer     Observer
}

// Controller serializes every transition of one search session.
// Catalog fetches run in their own goroutines; only the response to the
// most recent attempt is applied.
type Controller struct {
	client    domain.CatalogClient
	watchlist *watchlist.Store
	observer  Observer
	logger    *slog.Logger

	mu       sync.Mutex
	state    State
	attempts uint64
	ctx      context.Context
	stop     context.CancelFunc
	closed   bool
	cancel   context.CancelFunc // Cancels the in-flight fetch
	inflight sync.WaitGroup
}

// NewController creates a controller whose watchlist is hydrated from wl.
// No fetch happens until Start.
func NewController(client domain.CatalogClient, wl *watchlist.Store, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Controller{
		client:    client,
		watchlist: wl,
		observer:  opts.Observer,
		logger:    logger,
		state:     NewState(opts.DefaultQuery, opts.PageSize, wl.Items()),
		ctx:       ctx,
		stop:      stop,
	}
}

// Start issues the fetch for the initial query.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchLocked()
}

// Close cancels any in-flight fetch and waits for it to return. The
// current attempt is retired first, so a fetch that ends because of the
// cancellation is discarded rather than recorded as a failure. No fetch
// is issued after Close.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.attempts++
	c.state.Attempt = Attempt(c.attempts)
	c.mu.Unlock()

	c.stop()
	c.inflight.Wait()
}

// Wait blocks until every fetch issued so far has returned.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Snapshot returns the current derived view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// SetQuery stores q and, when it differs from the current query, fetches it.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if out := c.dispatchLocked(SetQuery{Query: q}); out.Applied {
		c.fetchLocked()
	}
}

// flusher is implemented by catalog clients that cache responses.
type flusher interface {
	Flush()
}

// Refresh fetches the current query again, bypassing any response cache.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if f, ok := c.client.(flusher); ok {
		f.Flush()
	}
	c.fetchLocked()
}

func (c *Controller) SetFilters(patch domain.FilterPatch) {
	c.dispatch(SetFilters{Patch: patch})
}

func (c *Controller) SetPageSize(n int) {
	c.dispatch(SetPageSize{Size: n})
}

func (c *Controller) SetPage(p int) {
	c.dispatch(SetPage{Page: p})
}

func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked(SetPage{Page: c.state.Page + 1})
}

func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked(SetPage{Page: c.state.Page - 1})
}

// AddToWatchlist saves show; it is a no-op when already saved.
func (c *Controller) AddToWatchlist(show domain.Show) bool {
	return c.dispatch(AddToWatchlist{Show: show}).Applied
}

// RemoveFromWatchlist drops the saved show with id, if any.
func (c *Controller) RemoveFromWatchlist(id int) bool {
	return c.dispatch(RemoveFromWatchlist{ID: id}).Applied
}

// ClearWatchlist empties the watchlist and erases it from storage.
func (c *Controller) ClearWatchlist() {
	c.dispatch(ClearWatchlist{})
}

// NewDetailView returns a detail view backed by the controller's catalog.
func (c *Controller) NewDetailView(onChange func(DetailState)) *DetailView {
	return NewDetailView(c.client, onChange, c.logger)
}

func (c *Controller) dispatch(a Action) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(a)
}

func (c *Controller) dispatchLocked(a Action) Outcome {
	out := Reduce(c.state, a)
	if !out.Applied {
		return out
	}
	c.state = out.State
	c.runEffect(out.Effect)
	if c.observer != nil {
		c.observer.OnChange(c.state.Snapshot())
	}
	return out
}

// runEffect performs persistence synchronously. Failures are logged by the
// watchlist and do not roll back the in-memory state.
func (c *Controller) runEffect(eff Effect) {
	switch eff := eff.(type) {
	case PersistWatchlist:
		// Error ignored: the watchlist logs it and memory stays authoritative.
		_ = c.watchlist.Replace(eff.Items)
	case EraseWatchlist:
		// Error ignored: the watchlist logs it.
		_ = c.watchlist.Clear()
	}
}

// fetchLocked issues a new attempt for the current query. Any earlier
// attempt is canceled and its response, if it still arrives, is discarded.
func (c *Controller) fetchLocked() {
	if c.closed {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel

	c.attempts++
	attempt := Attempt(c.attempts)
	query := c.state.Query

	c.dispatchLocked(BeginFetch{Attempt: attempt})
	c.logger.Debug("fetch started", "query", query, "attempt", attempt)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer cancel()

		shows, err := c.client.Search(ctx, query)

		c.mu.Lock()
		defer c.mu.Unlock()

		var out Outcome
		if err != nil {
			out = c.dispatchLocked(FailFetch{Attempt: attempt, Message: err.Error()})
		} else {
			out = c.dispatchLocked(CompleteFetch{Attempt: attempt, Shows: shows})
		}

		switch {
		case !out.Applied:
			c.logger.Debug("discarded stale response", "query", query, "attempt", attempt)
		case err != nil:
			c.logger.Warn("fetch failed", "query", query, "attempt", attempt, "error", err)
		default:
			c.logger.Debug("fetch complete", "query", query, "attempt", attempt, "results", len(shows))
		}
	}()
}

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/tvshelf/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DetailState is what a detail view shows for one show.
type DetailState struct {
	ShowID   int
	Loading  bool
	Error    string
	Show     *domain.Show
	Episodes []domain.Episode
}

// Season groups episodes sharing a season number.
type Season struct {
	Number   int
	Episodes []domain.Episode
}

// Seasons groups episodes by season, keeping first-seen season order.
func (d DetailState) Seasons() []Season {
	var seasons []Season
	index := make(map[int]int)
	for _, ep := range d.Episodes {
		i, ok := index[ep.Season]
		if !ok {
			i = len(seasons)
			index[ep.Season] = i
			seasons = append(seasons, Season{Number: ep.Season})
		}
		seasons[i].Episodes = append(seasons[i].Episodes, ep)
	}
	return seasons
}

// DetailView loads a show and its episodes. Its token is scoped to the view:
// re-loading another id or closing the view discards whatever is still in
// flight.
type DetailView struct {
	client   domain.CatalogClient
	onChange func(DetailState)
	logger   *slog.Logger

	mu       sync.Mutex
	gen      uint64
	closed   bool
	cancel   context.CancelFunc
	state    DetailState
	inflight sync.WaitGroup
}

// NewDetailView creates an empty view. onChange may be nil; it is called
// with the view locked and must not call back into it.
func NewDetailView(client domain.CatalogClient, onChange func(DetailState), logger *slog.Logger) *DetailView {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailView{client: client, onChange: onChange, logger: logger}
}

// Load (re)parameterizes the view to show id and fetches the show and its
// episodes concurrently. It is a no-op once the view is closed.
func (v *DetailView) Load(ctx context.Context, id int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel

	v.gen++
	gen := v.gen
	v.setLocked(DetailState{ShowID: id, Loading: true})

	v.inflight.Add(1)
	go func() {
		defer v.inflight.Done()
		defer cancel()

		var (
			show     *domain.Show
			episodes []domain.Episode
		)
		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			show, err = v.client.GetShow(gCtx, id)
			return err
		})
		g.Go(func() error {
			var err error
			episodes, err = v.client.GetEpisodes(gCtx, id)
			return err
		})
		err := g.Wait()

		v.mu.Lock()
		defer v.mu.Unlock()

		if v.closed || gen != v.gen {
			v.logger.Debug("discarded stale detail response", "showID", id)
			return
		}

		next := DetailState{ShowID: id}
		if err != nil {
			next.Error = err.Error()
			v.logger.Warn("detail load failed", "showID", id, "error", err)
		} else {
			next.Show = show
			next.Episodes = episodes
			v.logger.Debug("detail loaded", "showID", id, "episodes", len(episodes))
		}
		v.setLocked(next)
	}()
}

// State returns the current detail state.
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Close tears the view down. Responses still in flight are dropped.
func (v *DetailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.gen++
	if v.cancel != nil {
		v.cancel()
	}
}

// Wait blocks until every load issued so far has returned.
func (v *DetailView) Wait() {
	v.inflight.Wait()
}

func (v *DetailView) setLocked(s DetailState) {
	v.state = s
	if v.onChange != nil {
		v.onChange(s)
	}
}

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/store"
	"github.com/mmcdole/tvshelf/internal/watchlist"
)

type response struct {
	shows []domain.Show
	err   error
}

// gatedCatalog blocks each Search until the test releases a response for
// that query. Unless honorCancel is set, a canceled context is ignored so
// a superseded response can still arrive late.
type gatedCatalog struct {
	honorCancel bool

	mu       sync.Mutex
	searches map[string]chan response
	shows    map[int]chan response
	episodes map[int]chan []domain.Episode
}

func newGatedCatalog() *gatedCatalog {
	return &gatedCatalog{
		searches: make(map[string]chan response),
		shows:    make(map[int]chan response),
		episodes: make(map[int]chan []domain.Episode),
	}
}

func (g *gatedCatalog) search(q string) chan response {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.searches[q]
	if !ok {
		ch = make(chan response, 1)
		g.searches[q] = ch
	}
	return ch
}

func (g *gatedCatalog) show(id int) chan response {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.shows[id]
	if !ok {
		ch = make(chan response, 1)
		g.shows[id] = ch
	}
	return ch
}

func (g *gatedCatalog) episodeGate(id int) chan []domain.Episode {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.episodes[id]
	if !ok {
		ch = make(chan []domain.Episode, 1)
		g.episodes[id] = ch
	}
	return ch
}

func (g *gatedCatalog) release(q string, shows []domain.Show) {
	g.search(q) <- response{shows: shows}
}

func (g *gatedCatalog) fail(q string, err error) {
	g.search(q) <- response{err: err}
}

func (g *gatedCatalog) Search(ctx context.Context, q string) ([]domain.Show, error) {
	ch := g.search(q)
	if g.honorCancel {
		select {
		case r := <-ch:
			return r.shows, r.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	r := <-ch
	return r.shows, r.err
}

func (g *gatedCatalog) GetShow(ctx context.Context, id int) (*domain.Show, error) {
	r := <-g.show(id)
	if r.err != nil {
		return nil, r.err
	}
	return &r.shows[0], nil
}

func (g *gatedCatalog) GetEpisodes(ctx context.Context, id int) ([]domain.Episode, error) {
	select {
	case eps := <-g.episodeGate(id):
		return eps, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// recorder keeps every snapshot the controller publishes
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) OnChange(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) all() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Snapshot(nil), r.snaps...)
}

func makeShows(prefix string, n int) []domain.Show {
	shows := make([]domain.Show, n)
	for i := range shows {
		shows[i] = domain.Show{
			ID:       i + 1,
			Name:     fmt.Sprintf("%s %d", prefix, i),
			Genres:   []string{"Comedy"},
			Language: "English",
			Rating:   domain.Float64(float64(i%10) + 0.5),
		}
	}
	return shows
}

func showIDs(shows []domain.Show) []int {
	out := make([]int, len(shows))
	for i, s := range shows {
		out[i] = s.ID
	}
	return out
}

func newTestController(cat domain.CatalogClient, kv domain.KVStore, opts Options) *Controller {
	if kv == nil {
		kv = store.NewMemory()
	}
	return NewController(cat, watchlist.Open(kv, watchlist.DefaultKey, nil), opts, nil)
}

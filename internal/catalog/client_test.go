package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `[
  {"score": 0.9, "show": {"id": 431, "name": "Friends", "genres": ["Comedy", "Romance"], "language": "English",
    "rating": {"average": 8.5}, "image": {"medium": "https://img/friends-m.jpg", "original": "https://img/friends.jpg"},
    "summary": "<p>Six friends in <b>New York</b>.</p>"}},
  {"score": 0.4, "show": {"id": 5, "name": "Friends Again", "genres": [], "language": null,
    "rating": {"average": null}, "image": null, "summary": null}}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, MaxRetries: 1}, nil)
}

func TestSearchMapsShowsInOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/shows", r.URL.Path)
		assert.Equal(t, "friends", r.URL.Query().Get("q"))
		w.Write([]byte(searchBody))
	})

	shows, err := client.Search(context.Background(), " friends ")
	require.NoError(t, err)
	require.Len(t, shows, 2)

	assert.Equal(t, domain.Show{
		ID:          431,
		Name:        "Friends",
		Genres:      []string{"Comedy", "Romance"},
		Language:    "English",
		Rating:      domain.Float64(8.5),
		ImageURL:    "https://img/friends-m.jpg",
		SummaryHTML: "<p>Six friends in <b>New York</b>.</p>",
	}, shows[0])

	assert.Equal(t, 5, shows[1].ID)
	assert.Empty(t, shows[1].Language)
	assert.Nil(t, shows[1].Rating)
	assert.NotNil(t, shows[1].Genres)
}

func TestSearchBlankQuerySkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	shows, err := client.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, shows)
	assert.Zero(t, calls.Load())
}

func TestGetShowNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.GetShow(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"id": 431, "name": "Friends", "genres": ["Comedy"], "rating": {"average": 8.5}}`))
	})

	show, err := client.GetShow(context.Background(), 431)
	require.NoError(t, err)
	assert.Equal(t, "Friends", show.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRateLimitedAfterRetries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "friends")
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Search(context.Background(), "friends")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"`))
	})

	_, err := client.Search(context.Background(), "friends")
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestServerOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Options{BaseURL: url}, nil)
	_, err := client.Search(context.Background(), "friends")
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestGetEpisodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shows/431/episodes", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "season": 1, "number": 1, "name": "Pilot"},
			{"id": 2, "season": 1, "number": null, "name": "Special"}
		]`))
	})

	episodes, err := client.GetEpisodes(context.Background(), 431)
	require.NoError(t, err)
	assert.Equal(t, []domain.Episode{
		{ID: 1, Season: 1, Number: 1, Name: "Pilot"},
		{ID: 2, Season: 1, Number: 0, Name: "Special"},
	}, episodes)
}

func TestCanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "friends")
	assert.ErrorIs(t, err, context.Canceled)
}

package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/paging"
	"github.com/mmcdole/tvshelf/internal/session"
	"github.com/mmcdole/tvshelf/internal/tui/components"
	"github.com/mmcdole/tvshelf/internal/tui/styles"
	"github.com/mmcdole/tvshelf/internal/watchlist"
)

// Pane is the part of the screen receiving keys
type Pane int

const (
	PaneResults Pane = iota
	PaneWatchlist
	PaneDetail
)

// Model is the main Bubble Tea model for the application
type Model struct {
	ctrl      *session.Controller
	snapshots <-chan session.Snapshot
	details   chan session.DetailState
	detail    *session.DetailView
	logger    *slog.Logger

	// Latest published state
	snap        session.Snapshot
	detailState session.DetailState

	pane       Pane
	returnPane Pane // Pane to restore when leaving details
	cursor     int
	wlCursor   int
	query      components.Prompt
	find       components.Prompt
	spinner    spinner.Model
	statusMsg  string

	Width  int
	Height int
}

// NewModel creates a model over ctrl. snapshots must be the channel
// behind the controller's ChannelObserver.
func NewModel(ctrl *session.Controller, snapshots <-chan session.Snapshot, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	details := make(chan session.DetailState, 1)

	snap := ctrl.Snapshot()
	query := components.NewPrompt("Search", "show name")
	query.Activate(snap.Query)
	query.Deactivate()

	return Model{
		ctrl:      ctrl,
		snapshots: snapshots,
		details:   details,
		detail: ctrl.NewDetailView(func(s session.DetailState) {
			sendLatest(details, s)
		}),
		logger:  logger,
		snap:    snap,
		query:   query,
		find:    components.NewPrompt("Find", "saved show"),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.SpinnerStyle)),
	}
}

// Init starts listening for session updates
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.snapshots),
		waitForDetail(m.details),
		m.spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case SnapshotMsg:
		m.snap = msg.Snapshot
		m.clampCursors()
		return m, waitForSnapshot(m.snapshots)

	case DetailMsg:
		m.detailState = msg.State
		return m, waitForDetail(m.details)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Prompts own the keyboard while focused
	if m.query.Active() {
		var cmd tea.Cmd
		var res components.PromptResult
		m.query, cmd, res = m.query.Update(msg)
		if res == components.PromptSubmitted {
			m.ctrl.SetQuery(m.query.Value())
			m.cursor = 0
			m.refresh()
		}
		return m, cmd
	}
	if m.find.Active() {
		var cmd tea.Cmd
		m.find, cmd, _ = m.find.Update(msg)
		m.clampCursors()
		return m, cmd
	}

	if key.Matches(msg, Keys.Quit) {
		m.detail.Close()
		return m, tea.Quit
	}

	switch m.pane {
	case PaneWatchlist:
		return m.handleWatchlistKey(msg)
	case PaneDetail:
		if key.Matches(msg, Keys.Back) {
			m.pane = m.returnPane
		}
		return m, nil
	default:
		return m.handleResultsKey(msg)
	}
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Search):
		cmd := m.query.Activate(m.snap.Query)
		return m, cmd
	case key.Matches(msg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.Down):
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.PrevPage):
		m.ctrl.PrevPage()
		m.cursor = 0
	case key.Matches(msg, Keys.NextPage):
		m.ctrl.NextPage()
		m.cursor = 0
	case key.Matches(msg, Keys.PageSize):
		m.ctrl.SetPageSize(nextPageSize(m.snap.PageSize))
	case key.Matches(msg, Keys.Genre):
		genre := cycleOption(m.snap.Options.Genres, m.snap.Filters.Genre)
		m.ctrl.SetFilters(domain.FilterPatch{Genre: &genre})
	case key.Matches(msg, Keys.Language):
		language := cycleOption(m.snap.Options.Languages, m.snap.Filters.Language)
		m.ctrl.SetFilters(domain.FilterPatch{Language: &language})
	case key.Matches(msg, Keys.Rating):
		rating := nextRating(m.snap.Filters.MinRating)
		m.ctrl.SetFilters(domain.FilterPatch{MinRating: &rating})
	case key.Matches(msg, Keys.ClearFilters):
		def := domain.DefaultFilterSpec()
		m.ctrl.SetFilters(domain.FilterPatch{Genre: &def.Genre, Language: &def.Language, MinRating: &def.MinRating})
	case key.Matches(msg, Keys.Refresh):
		m.ctrl.Refresh()
	case key.Matches(msg, Keys.ToggleSaved):
		if show, ok := m.selectedResult(); ok {
			m.toggleSaved(show)
		}
	case key.Matches(msg, Keys.Enter):
		if show, ok := m.selectedResult(); ok {
			m.openDetail(show.ID)
		}
	case key.Matches(msg, Keys.Watchlist):
		m.pane = PaneWatchlist
	}
	m.refresh()
	return m, nil
}

func (m Model) handleWatchlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.watchlistItems()

	switch {
	case key.Matches(msg, Keys.Find):
		cmd := m.find.Activate(m.find.Value())
		return m, cmd
	case key.Matches(msg, Keys.Up):
		if m.wlCursor > 0 {
			m.wlCursor--
		}
	case key.Matches(msg, Keys.Down):
		if m.wlCursor < len(items)-1 {
			m.wlCursor++
		}
	case key.Matches(msg, Keys.Remove):
		if m.wlCursor < len(items) {
			m.ctrl.RemoveFromWatchlist(items[m.wlCursor].ID)
		}
	case key.Matches(msg, Keys.ClearAll):
		m.ctrl.ClearWatchlist()
		m.statusMsg = "Watch later list cleared"
	case key.Matches(msg, Keys.Enter):
		if m.wlCursor < len(items) {
			m.openDetail(items[m.wlCursor].ID)
		}
	case key.Matches(msg, Keys.Watchlist), key.Matches(msg, Keys.Back):
		m.pane = PaneResults
	}
	m.refresh()
	return m, nil
}

// refresh pulls the controller's current snapshot so the next frame does
// not wait on the observer channel.
func (m *Model) refresh() {
	m.snap = m.ctrl.Snapshot()
	m.clampCursors()
}

func (m *Model) clampCursors() {
	m.cursor = clampIndex(m.cursor, len(m.snap.Visible))
	m.wlCursor = clampIndex(m.wlCursor, len(m.watchlistItems()))
}

func (m *Model) toggleSaved(show domain.Show) {
	if m.snap.InWatchlist(show.ID) {
		m.ctrl.RemoveFromWatchlist(show.ID)
		m.statusMsg = "Removed " + show.Name
		return
	}
	m.ctrl.AddToWatchlist(show)
	m.statusMsg = "Saved " + show.Name
}

func (m *Model) openDetail(id int) {
	m.returnPane = m.pane
	m.pane = PaneDetail
	if m.detailState.ShowID == id && m.detailState.Error == "" {
		return
	}
	m.detail.Load(context.Background(), id)
	m.detailState = m.detail.State()
}

func (m Model) selectedResult() (domain.Show, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return domain.Show{}, false
	}
	return m.snap.Visible[m.cursor], true
}

// watchlistItems returns saved shows narrowed by the find prompt
func (m Model) watchlistItems() []domain.Show {
	if q := m.find.Value(); q != "" {
		return watchlist.Find(m.snap.Watchlist, q)
	}
	return m.snap.Watchlist
}

// Snapshot returns the session state the model last rendered
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}

// CurrentPane returns the pane receiving keys
func (m Model) CurrentPane() Pane {
	return m.pane
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// cycleOption advances current through "all" followed by options
func cycleOption(options []string, current string) string {
	all := append([]string{domain.AllOption}, options...)
	for i, opt := range all {
		if opt == current {
			return all[(i+1)%len(all)]
		}
	}
	return domain.AllOption
}

func nextRating(current float64) float64 {
	for _, step := range ratingSteps {
		if step > current {
			return step
		}
	}
	return ratingSteps[0]
}

func nextPageSize(current int) int {
	for i, n := range paging.PageSizes {
		if n == current {
			return paging.PageSizes[(i+1)%len(paging.PageSizes)]
		}
	}
	return paging.DefaultPageSize
}

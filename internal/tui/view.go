package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/tvshelf/internal/catalog"
	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/session"
	"github.com/mmcdole/tvshelf/internal/tui/styles"
)

const defaultWidth = 80

// View renders the current pane
func (m Model) View() string {
	var body string
	switch m.pane {
	case PaneWatchlist:
		body = m.renderWatchlist()
	case PaneDetail:
		body = m.renderDetail()
	default:
		body = m.renderResults()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderFooter(),
	)
}

func (m Model) width() int {
	if m.Width > 0 {
		return m.Width
	}
	return defaultWidth
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("tvshelf")
	saved := styles.DimBadgeStyle.Render(fmt.Sprintf("%s %d", styles.SavedChar, len(m.snap.Watchlist)))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.query.View(), "  ", saved)
}

// renderResults shows exactly one of loading, error, empty or content
func (m Model) renderResults() string {
	filters := m.renderFilters()

	switch m.snap.Status {
	case session.StatusLoading:
		return filters + "\n\n" + m.spinner.View() + " Searching for " + styles.AccentStyle.Render(m.snap.Query) + "..."
	case session.StatusError:
		return filters + "\n\n" + styles.ErrorStyle.Render("Error: "+m.snap.Error) + "\n" +
			styles.DimStyle.Render("Press r to retry")
	case session.StatusEmpty:
		msg := "No shows found"
		if len(m.snap.Results) > 0 {
			msg = "No shows match the current filters"
		}
		return filters + "\n\n" + styles.DimStyle.Render(msg)
	}

	rows := make([]string, 0, len(m.snap.Visible))
	for i, show := range m.snap.Visible {
		rows = append(rows, m.renderShowRow(show, i == m.cursor))
	}
	prev, next := " ", " "
	if m.snap.HasPrev() {
		prev = styles.AccentStyle.Render("‹")
	}
	if m.snap.HasNext() {
		next = styles.AccentStyle.Render("›")
	}
	pager := prev + " " + styles.DimStyle.Render(fmt.Sprintf("Page %d of %d", m.snap.Page, m.snap.TotalPages)) +
		" " + next + "  " + styles.DimStyle.Render(fmt.Sprintf("(%d shows, %d per page)", m.snap.FilteredCount, m.snap.PageSize))

	return filters + "\n\n" + strings.Join(rows, "\n") + "\n\n" + pager
}

func (m Model) renderFilters() string {
	f := m.snap.Filters
	badge := func(label, value string, active bool) string {
		text := label + ": " + value
		if active {
			return styles.BadgeStyle.Render(text)
		}
		return styles.DimBadgeStyle.Render(text)
	}
	rating := "any"
	if f.MinRating > 0 {
		rating = fmt.Sprintf("%.0f+", f.MinRating)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		badge("genre", f.Genre, f.Genre != domain.AllOption), " ",
		badge("language", f.Language, f.Language != domain.AllOption), " ",
		badge("rating", rating, f.MinRating > 0),
	)
}

func (m Model) renderShowRow(show domain.Show, selected bool) string {
	mark := " "
	if m.snap.InWatchlist(show.ID) {
		mark = styles.SavedMark
	}
	name := styles.Truncate(show.Name, m.width()/2)
	meta := fmt.Sprintf("%s  %s  %s",
		show.FormattedRating(), orDash(show.Language), strings.Join(show.Genres, ", "))
	line := fmt.Sprintf("%s %-*s  %s", mark, m.width()/2, name, styles.Truncate(meta, m.width()/2-6))

	if selected {
		return styles.SelectedItemStyle.Render(line)
	}
	return styles.NormalItemStyle.Render(line)
}

func (m Model) renderWatchlist() string {
	header := styles.SubtitleStyle.Render("Watch later") + "  " + m.find.View()

	items := m.watchlistItems()
	if len(m.snap.Watchlist) == 0 {
		return header + "\n\n" + styles.DimStyle.Render("Nothing saved yet. Press space on a result to save it.")
	}
	if len(items) == 0 {
		return header + "\n\n" + styles.DimStyle.Render("No saved shows match")
	}

	rows := make([]string, 0, len(items))
	for i, show := range items {
		line := fmt.Sprintf("%-*s  %s", m.width()/2, styles.Truncate(show.Name, m.width()/2), show.FormattedRating())
		if i == m.wlCursor {
			rows = append(rows, styles.SelectedItemStyle.Render(line))
		} else {
			rows = append(rows, styles.NormalItemStyle.Render(line))
		}
	}
	return header + "\n\n" + strings.Join(rows, "\n")
}

func (m Model) renderDetail() string {
	d := m.detailState
	switch {
	case d.Loading:
		return m.spinner.View() + " Loading show..."
	case d.Error != "":
		return styles.ErrorStyle.Render("Error: " + d.Error)
	case d.Show == nil:
		return ""
	}

	show := d.Show
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(show.Name))
	if m.snap.InWatchlist(show.ID) {
		b.WriteString(" " + styles.SavedMark)
	}
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s  ·  %s  ·  rating %s",
		orDash(strings.Join(show.Genres, ", ")), orDash(show.Language), show.FormattedRating())))
	b.WriteString("\n")

	if summary := catalog.PlainText(show.SummaryHTML); summary != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(m.width() - 4).Render(summary))
		b.WriteString("\n")
	}

	for _, season := range d.Seasons() {
		b.WriteString("\n")
		b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("Season %d", season.Number)))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d episodes", len(season.Episodes))))
		b.WriteString("\n")
		for _, ep := range season.Episodes {
			b.WriteString("  " + styles.DimStyle.Render(ep.EpisodeCode()) + "  " + ep.Name + "\n")
		}
	}
	return b.String()
}

func (m Model) renderFooter() string {
	if m.query.Active() || m.find.Active() {
		return renderHelp([]key.Binding{
			key.NewBinding(key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithHelp("esc", "cancel")),
		})
	}

	var bindings []key.Binding
	switch m.pane {
	case PaneWatchlist:
		bindings = []key.Binding{Keys.Up, Keys.Down, Keys.Enter, Keys.Find, Keys.Remove, Keys.ClearAll, Keys.Watchlist, Keys.Quit}
	case PaneDetail:
		bindings = []key.Binding{Keys.Back, Keys.Quit}
	default:
		bindings = []key.Binding{Keys.Search, Keys.PrevPage, Keys.NextPage, Keys.ToggleSaved, Keys.Genre,
			Keys.Language, Keys.Rating, Keys.PageSize, Keys.Watchlist, Keys.Quit}
		if m.snap.Status == session.StatusError {
			bindings = append([]key.Binding{Keys.Refresh}, bindings...)
		}
	}

	help := renderHelp(bindings)
	if m.statusMsg != "" {
		help = styles.SuccessStyle.Render(m.statusMsg) + "  " + help
	}
	return help
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

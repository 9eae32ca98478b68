package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/session"
)

// showColumn is one column of a show table
type showColumn struct {
	header string
	align  text.Align
	value  func(domain.Show) string
}

var showColumns = []showColumn{
	{"ID", text.AlignRight, func(s domain.Show) string { return strconv.Itoa(s.ID) }},
	{"Name", text.AlignLeft, func(s domain.Show) string { return s.Name }},
	{"Genres", text.AlignLeft, func(s domain.Show) string { return strings.Join(s.Genres, ", ") }},
	{"Language", text.AlignLeft, func(s domain.Show) string { return dash(s.Language) }},
	{"Rating", text.AlignRight, func(s domain.Show) string { return s.FormattedRating() }},
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderShows renders one row per show. A non-nil saved adds a column
// marking shows on the watch later list.
func renderShows(shows []domain.Show, saved func(int) bool) string {
	columns := showColumns
	if saved != nil {
		columns = append(columns[:len(columns):len(columns)], showColumn{
			header: "Saved",
			align:  text.AlignCenter,
			value: func(s domain.Show) string {
				if saved(s.ID) {
					return "*"
				}
				return ""
			},
		})
	}

	tw := newTableWriter()
	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.header
		configs[i] = table.ColumnConfig{Number: i + 1, Align: c.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, s := range shows {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = c.value(s)
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}

// renderSeason renders a season's episodes in airing order
func renderSeason(season session.Season) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Episode", "Title"})
	for _, ep := range season.Episodes {
		tw.AppendRow(table.Row{ep.EpisodeCode(), dash(ep.Name)})
	}
	return tw.Render()
}

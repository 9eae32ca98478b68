package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/tvshelf/internal/catalog"
	"github.com/mmcdole/tvshelf/internal/session"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a show's details and episode list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShowID(args[0])
			if err != nil {
				return err
			}
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			view := session.NewDetailView(ctx.client, nil, ctx.logger)
			defer view.Close()
			view.Load(cmd.Context(), id)
			view.Wait()

			state := view.State()
			if state.Error != "" {
				return fmt.Errorf("show %d: %s", id, state.Error)
			}
			printDetail(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func printDetail(w io.Writer, state session.DetailState) {
	show := state.Show
	fmt.Fprintf(w, "%s (#%d)\n", show.Name, show.ID)
	fmt.Fprintf(w, "Genres:   %s\n", dash(strings.Join(show.Genres, ", ")))
	fmt.Fprintf(w, "Language: %s\n", dash(show.Language))
	fmt.Fprintf(w, "Rating:   %s\n", show.FormattedRating())
	if summary := catalog.PlainText(show.SummaryHTML); summary != "" {
		fmt.Fprintf(w, "\n%s\n", summary)
	}

	for _, season := range state.Seasons() {
		fmt.Fprintf(w, "\nSeason %d\n", season.Number)
		fmt.Fprintln(w, renderSeason(season))
	}
}

func parseShowID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid show id %q", raw)
	}
	return id, nil
}

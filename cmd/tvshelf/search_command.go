package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/tvshelf/internal/domain"
	"github.com/mmcdole/tvshelf/internal/filter"
	"github.com/mmcdole/tvshelf/internal/paging"
	"github.com/mmcdole/tvshelf/internal/session"
)

type searchFlags struct {
	genre     string
	language  string
	minRating *float64
	page      int
	pageSize  int
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var flags searchFlags
	var minRating float64

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog and print one page of results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("min-rating") {
				flags.minRating = &minRating
			}
			return runSearch(cmd, ctx, strings.Join(args, " "), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.genre, "genre", "g", "", "Only shows with this genre (fuzzy matched)")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "Only shows in this language (fuzzy matched)")
	cmd.Flags().Float64VarP(&minRating, "min-rating", "r", 0, "Minimum average rating")
	cmd.Flags().IntVarP(&flags.page, "page", "p", 1, "Page to print")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "Shows per page (6 or 12)")

	return cmd
}

func runSearch(cmd *cobra.Command, ctx *commandContext, query string, flags searchFlags) error {
	if flags.pageSize != 0 && !paging.ValidPageSize(flags.pageSize) {
		return fmt.Errorf("invalid page size %d: must be one of %v", flags.pageSize, paging.PageSizes)
	}
	if err := ctx.open(); err != nil {
		return err
	}
	defer ctx.close()

	ctrl := ctx.newController(query, nil)
	defer ctrl.Close()

	ctrl.Start()
	ctrl.Wait()

	snap := ctrl.Snapshot()
	if snap.Status == session.StatusError {
		return fmt.Errorf("search %q: %s", snap.Query, snap.Error)
	}

	patch, err := resolveFilters(snap.Options, flags)
	if err != nil {
		return err
	}
	ctrl.SetFilters(patch)
	if flags.pageSize != 0 {
		ctrl.SetPageSize(flags.pageSize)
	}
	if flags.page > 1 {
		ctrl.SetPage(flags.page)
	}

	printSnapshot(cmd.OutOrStdout(), ctrl.Snapshot())
	return nil
}

// resolveFilters maps typed genre and language values onto the options
// present in the results.
func resolveFilters(opts filter.Options, flags searchFlags) (domain.FilterPatch, error) {
	patch := domain.FilterPatch{MinRating: flags.minRating}

	if flags.genre != "" {
		genre, ok := filter.MatchOption(opts.Genres, flags.genre)
		if !ok {
			return patch, fmt.Errorf("no genre matches %q (available: %s)", flags.genre, strings.Join(opts.Genres, ", "))
		}
		patch.Genre = &genre
	}
	if flags.language != "" {
		language, ok := filter.MatchOption(opts.Languages, flags.language)
		if !ok {
			return patch, fmt.Errorf("no language matches %q (available: %s)", flags.language, strings.Join(opts.Languages, ", "))
		}
		patch.Language = &language
	}
	return patch, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/tvshelf/internal/watchlist"
)

func newWatchlistCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watchlist",
		Aliases: []string{"wl"},
		Short:   "Manage the watch later list",
	}
	cmd.AddCommand(newWatchlistListCommand(ctx))
	cmd.AddCommand(newWatchlistAddCommand(ctx))
	cmd.AddCommand(newWatchlistRemoveCommand(ctx))
	cmd.AddCommand(newWatchlistClearCommand(ctx))
	return cmd
}

// withWatchlist opens storage for the duration of fn.
func withWatchlist(ctx *commandContext, fn func(*watchlist.Store) error) error {
	if err := ctx.open(); err != nil {
		return err
	}
	defer ctx.close()
	return fn(ctx.watchlist())
}

func newWatchlistListCommand(ctx *commandContext) *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print saved shows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWatchlist(ctx, func(wl *watchlist.Store) error {
				items := wl.Items()
				if find != "" {
					items = watchlist.Find(items, find)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Watch later list is empty.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderShows(items, nil))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&find, "find", "f", "", "Fuzzy filter saved shows by name")
	return cmd
}

func newWatchlistAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <id>",
		Short: "Save a show by catalog id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShowID(args[0])
			if err != nil {
				return err
			}
			return withWatchlist(ctx, func(wl *watchlist.Store) error {
				if wl.Contains(id) {
					fmt.Fprintf(cmd.OutOrStdout(), "Show %d is already saved.\n", id)
					return nil
				}
				show, err := ctx.client.GetShow(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("look up show %d: %w", id, err)
				}
				if _, err := wl.Add(*show); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", show.Name)
				return nil
			})
		},
	}
}

func newWatchlistRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a saved show",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShowID(args[0])
			if err != nil {
				return err
			}
			return withWatchlist(ctx, func(wl *watchlist.Store) error {
				removed, err := wl.Remove(id)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(cmd.OutOrStdout(), "Show %d is not saved.\n", id)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed show %d.\n", id)
				return nil
			})
		},
	}
}

func newWatchlistClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWatchlist(ctx, func(wl *watchlist.Store) error {
				if err := wl.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Watch later list cleared.")
				return nil
			})
		},
	}
}

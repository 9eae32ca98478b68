package main

import (
	"fmt"
	"io"

	"github.com/mmcdole/tvshelf/internal/session"
)

// printSnapshot writes exactly one of the loading, error, empty or content
// renderings of snap.
func printSnapshot(w io.Writer, snap session.Snapshot) {
	switch snap.Status {
	case session.StatusLoading:
		fmt.Fprintln(w, "Loading...")
	case session.StatusError:
		fmt.Fprintf(w, "Error: %s\n", snap.Error)
	case session.StatusEmpty:
		fmt.Fprintf(w, "No shows match %q.\n", snap.Query)
	default:
		fmt.Fprintln(w, renderShows(snap.Visible, snap.InWatchlist))
		fmt.Fprintf(w, "Page %d of %d (%d of %d shows)\n",
			snap.Page, snap.TotalPages, snap.FilteredCount, len(snap.Results))
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

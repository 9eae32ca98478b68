package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/tvshelf/internal/session"
)

// SnapshotMsg carries a session snapshot published by the controller
type SnapshotMsg struct {
	Snapshot session.Snapshot
}

// DetailMsg carries a detail view update
type DetailMsg struct {
	State session.DetailState
}

// waitForSnapshot blocks until the controller publishes a snapshot
func waitForSnapshot(ch <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return SnapshotMsg{Snapshot: snap}
	}
}

// waitForDetail blocks until the detail view changes
func waitForDetail(ch <-chan session.DetailState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return DetailMsg{State: state}
	}
}

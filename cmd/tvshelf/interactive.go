package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmcdole/tvshelf/internal/session"
	"github.com/mmcdole/tvshelf/internal/tui"
)

func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	if err := ctx.open(); err != nil {
		return err
	}
	defer ctx.close()

	snapshots := make(chan session.Snapshot, 1)
	ctrl := ctx.newController("", tui.NewChannelObserver(snapshots))
	defer ctrl.Close()

	model := tui.NewModel(ctrl, snapshots, ctx.logger)
	ctrl.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	ctx.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		ctx.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	ctx.logger.Info("shutting down")
	return nil
}

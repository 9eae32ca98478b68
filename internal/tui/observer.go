package tui

import "github.com/mmcdole/tvshelf/internal/session"

// ChannelObserver adapts session.Observer to a channel for Bubble Tea.
// Only the newest snapshot matters, so a pending one is replaced rather
// than queued behind.
type ChannelObserver struct {
	ch chan session.Snapshot
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan session.Snapshot) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnChange publishes snap without blocking.
func (o *ChannelObserver) OnChange(snap session.Snapshot) {
	sendLatest(o.ch, snap)
}

// sendLatest delivers v, evicting a pending value if the channel is full.
// Callers must be the channel's only sender.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

package tui

import "github.com/gifdex/gifdex/internal/domain"

// ChannelObserver adapts domain.SearchObserver to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- domain.SearchUpdate
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- domain.SearchUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnSearch sends the update to the channel (non-blocking if full).
func (o *ChannelObserver) OnSearch(update domain.SearchUpdate) {
	select {
	case o.ch <- update:
	default: // Non-blocking if channel full
	}
}

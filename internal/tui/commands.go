package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gifdex/gifdex/internal/domain"
	"github.com/gifdex/gifdex/internal/service"
)

// Command factories for async operations

const searchTimeout = 30 * time.Second

// SearchCmd runs the search in the background. Every outcome (success,
// failure, stale drop) arrives through the service observer channel, so the
// command itself yields no message. An empty tag is a silent no-op.
func SearchCmd(svc *service.SearchService, tag string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		// Failures are reported via the observer as well; the returned
		// error carries nothing the UI does not already receive.
		_ = svc.SearchTag(ctx, tag)
		return nil
	}
}

// ListenForUpdatesCmd reads one search update from the observer channel.
// The model re-arms it after every received update.
func ListenForUpdatesCmd(ch <-chan domain.SearchUpdate) tea.Cmd {
	return func() tea.Msg {
		return SearchUpdateMsg{Update: <-ch}
	}
}

// RemoveTagCmd removes a tag from the history
func RemoveTagCmd(svc *service.SearchService, tag string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.RemoveTagFromHistory(tag); err != nil {
			return ErrMsg{Err: err, Context: "removing tag"}
		}
		return HistoryChangedMsg{Tags: svc.TagsHistory()}
	}
}

// ClearHistoryCmd empties the tag history
func ClearHistoryCmd(svc *service.SearchService) tea.Cmd {
	return func() tea.Msg {
		if err := svc.ClearHistory(); err != nil {
			return ErrMsg{Err: err, Context: "clearing history"}
		}
		return HistoryChangedMsg{Tags: svc.TagsHistory()}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

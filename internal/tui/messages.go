package tui

import "github.com/gifdex/gifdex/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SearchRequestedMsg signals that a search should be started
type SearchRequestedMsg struct {
	Tag string
}

// SearchUpdateMsg carries the outcome of a completed search request
type SearchUpdateMsg struct {
	Update domain.SearchUpdate
}

// HistoryChangedMsg signals that the tag history was mutated
type HistoryChangedMsg struct {
	Tags []string
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

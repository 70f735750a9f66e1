package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeString(t *testing.T, s SearchInput, text string) SearchInput {
	t.Helper()
	for _, r := range text {
		s, _, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

func TestSearchInput_EnterCommitsAndClears(t *testing.T) {
	s := NewSearchInput()
	s = typeString(t, s, "Cats")

	s, _, value, committed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, committed)
	// Forwarded unmodified: no trimming, no case folding
	assert.Equal(t, "Cats", value)
	assert.Equal(t, "", s.Value())
}

func TestSearchInput_CommitsWhitespaceAsIs(t *testing.T) {
	s := NewSearchInput()
	s = typeString(t, s, "   ")

	s, _, value, committed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, committed)
	assert.Equal(t, "   ", value)
	assert.Equal(t, "", s.Value())
}

func TestSearchInput_CommitsEmptyField(t *testing.T) {
	s := NewSearchInput()

	_, _, value, committed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The input forwards even the empty value; rejecting it is the
	// service's decision
	assert.True(t, committed)
	assert.Equal(t, "", value)
}

func TestSearchInput_TypingDoesNotCommit(t *testing.T) {
	s := NewSearchInput()

	s, _, _, committed := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.False(t, committed)
	assert.Equal(t, "x", s.Value())
}

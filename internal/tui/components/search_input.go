package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gifdex/gifdex/internal/tui/styles"
)

// SearchInput is the tag entry field. It holds no state beyond the current
// field contents: Enter commits the value as-is (no trimming) and resets
// the field.
type SearchInput struct {
	input textinput.Model
}

// NewSearchInput creates a new search input component
func NewSearchInput() SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Search tags..."
	ti.CharLimit = 100
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = styles.TitleStyle
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return SearchInput{input: ti}
}

// Focus gives keyboard focus to the field
func (s *SearchInput) Focus() {
	s.input.Focus()
}

// Blur removes keyboard focus from the field
func (s *SearchInput) Blur() {
	s.input.Blur()
}

// Focused returns true if the field has keyboard focus
func (s SearchInput) Focused() bool {
	return s.input.Focused()
}

// SetWidth updates the field width
func (s *SearchInput) SetWidth(width int) {
	s.input.Width = width
}

// Value returns the current field contents
func (s SearchInput) Value() string {
	return s.input.Value()
}

// Init initializes the component
func (s SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. On Enter it returns the committed value
// unmodified and clears the field; committed is false otherwise.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd, string, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		value := s.input.Value()
		s.input.SetValue("")
		return s, nil, value, true
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, "", false
}

// View renders the component
func (s SearchInput) View() string {
	return s.input.View()
}

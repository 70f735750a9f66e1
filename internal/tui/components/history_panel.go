package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gifdex/gifdex/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// HistoryAction is what the panel asks the application to do
type HistoryAction int

const (
	HistoryActionNone HistoryAction = iota
	HistoryActionSearch
	HistoryActionRemove
	HistoryActionClear
)

// historyEntry is one visible row with match positions for highlighting
type historyEntry struct {
	tag            string
	matchedIndexes []int
}

// HistoryPanel lists recent tags, filterable by fuzzy match. Enter
// re-searches the selected tag.
type HistoryPanel struct {
	tags    []string
	entries []historyEntry
	cursor  int
	filter  textinput.Model
	focused bool
	width   int
	height  int
}

// NewHistoryPanel creates a new history panel
func NewHistoryPanel(tags []string) HistoryPanel {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 50
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	p := HistoryPanel{
		tags:   tags,
		filter: ti,
	}
	p.applyFilter()
	return p
}

// SetTags replaces the tag list, keeping the current filter
func (p *HistoryPanel) SetTags(tags []string) {
	p.tags = tags
	p.applyFilter()
	if p.cursor >= len(p.entries) {
		p.cursor = 0
	}
}

// Focus gives keyboard focus to the panel
func (p *HistoryPanel) Focus() {
	p.focused = true
	p.filter.Focus()
}

// Blur removes keyboard focus
func (p *HistoryPanel) Blur() {
	p.focused = false
	p.filter.Blur()
}

// Focused returns true if the panel has keyboard focus
func (p HistoryPanel) Focused() bool {
	return p.focused
}

// SetSize updates the panel dimensions
func (p *HistoryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.filter.Width = width - 6
}

// Selected returns the tag under the cursor
func (p HistoryPanel) Selected() (string, bool) {
	if len(p.entries) == 0 || p.cursor >= len(p.entries) {
		return "", false
	}
	return p.entries[p.cursor].tag, true
}

// Count returns the number of visible entries
func (p HistoryPanel) Count() int {
	return len(p.entries)
}

// Update handles messages. The returned action tells the application what
// the user asked for; tag is set for search and remove actions.
func (p HistoryPanel) Update(msg tea.Msg) (HistoryPanel, tea.Cmd, HistoryAction, string) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil, HistoryActionNone, ""
	}

	switch {
	case key.Matches(keyMsg, HistoryKeys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil, HistoryActionNone, ""

	case key.Matches(keyMsg, HistoryKeys.Down):
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
		return p, nil, HistoryActionNone, ""

	case key.Matches(keyMsg, HistoryKeys.Select):
		if tag, ok := p.Selected(); ok {
			return p, nil, HistoryActionSearch, tag
		}
		return p, nil, HistoryActionNone, ""

	case key.Matches(keyMsg, HistoryKeys.Remove):
		if tag, ok := p.Selected(); ok {
			return p, nil, HistoryActionRemove, tag
		}
		return p, nil, HistoryActionNone, ""

	case key.Matches(keyMsg, HistoryKeys.Clear):
		return p, nil, HistoryActionClear, ""
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.applyFilter()
	if p.cursor >= len(p.entries) {
		p.cursor = 0
	}
	return p, cmd, HistoryActionNone, ""
}

// applyFilter rebuilds the visible entries from the current filter text
func (p *HistoryPanel) applyFilter() {
	query := p.filter.Value()
	if query == "" {
		p.entries = make([]historyEntry, len(p.tags))
		for i, tag := range p.tags {
			p.entries[i] = historyEntry{tag: tag}
		}
		return
	}

	matches := fuzzy.Find(strings.ToLower(query), p.tags)
	p.entries = make([]historyEntry, len(matches))
	for i, m := range matches {
		p.entries[i] = historyEntry{tag: m.Str, matchedIndexes: m.MatchedIndexes}
	}
}

// View renders the panel
func (p HistoryPanel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Recent"))
	b.WriteString("\n")

	if p.focused {
		b.WriteString(p.filter.View())
		b.WriteString("\n")
	}

	if len(p.entries) == 0 {
		if p.filter.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches"))
		} else {
			b.WriteString(styles.DimStyle.Render("No recent tags"))
		}
		return b.String()
	}

	for i, entry := range p.entries {
		// Selected rows drop the match highlight; nesting styles inside a
		// styled row breaks the background
		if p.focused && i == p.cursor {
			b.WriteString(styles.SelectedItemStyle.Render(entry.tag))
		} else {
			b.WriteString(" ")
			b.WriteString(highlightTag(entry.tag, entry.matchedIndexes))
		}
		b.WriteString("\n")
	}

	if p.focused {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d/%d", p.cursor+1, len(p.entries))))
	}

	return b.String()
}

// highlightTag renders a tag with matched characters emphasized,
// batching consecutive runs so styles are not emitted per character
func highlightTag(tag string, matchedIndexes []int) string {
	if len(matchedIndexes) == 0 {
		return styles.SubtitleStyle.Render(tag)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder
	runes := []rune(tag)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]

		var batch strings.Builder
		for i < len(runes) && matchSet[i] == isMatch {
			batch.WriteRune(runes[i])
			i++
		}

		if isMatch {
			b.WriteString(styles.MatchStyle.Render(batch.String()))
		} else {
			b.WriteString(styles.SubtitleStyle.Render(batch.String()))
		}
	}
	return b.String()
}

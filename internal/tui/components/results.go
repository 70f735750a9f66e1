package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gifdex/gifdex/internal/domain"
	"github.com/gifdex/gifdex/internal/tui/styles"
)

// ResultsPane renders the current result list. The list is replaced
// wholesale on every completed search.
type ResultsPane struct {
	gifs   []domain.Gif
	query  string
	cursor int
	width  int
	height int
}

// NewResultsPane creates a new results pane
func NewResultsPane() ResultsPane {
	return ResultsPane{}
}

// SetResults replaces the displayed results
func (r *ResultsPane) SetResults(query string, gifs []domain.Gif) {
	r.query = query
	r.gifs = gifs
	r.cursor = 0
}

// SetSize updates the pane dimensions
func (r *ResultsPane) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Selected returns the result under the cursor
func (r ResultsPane) Selected() *domain.Gif {
	if len(r.gifs) == 0 || r.cursor >= len(r.gifs) {
		return nil
	}
	return &r.gifs[r.cursor]
}

// Count returns the number of displayed results
func (r ResultsPane) Count() int {
	return len(r.gifs)
}

// Update handles navigation keys
func (r ResultsPane) Update(msg tea.Msg) ResultsPane {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r
	}

	switch {
	case key.Matches(keyMsg, ResultsKeys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(keyMsg, ResultsKeys.Down):
		if r.cursor < len(r.gifs)-1 {
			r.cursor++
		}
	}
	return r
}

// View renders the pane
func (r ResultsPane) View() string {
	var b strings.Builder

	if len(r.gifs) == 0 {
		if r.query == "" {
			b.WriteString(styles.DimStyle.Render("Type a tag and press Enter"))
		} else {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("No results for %q", r.query)))
		}
		return b.String()
	}

	maxRows := r.height
	if maxRows <= 0 || maxRows > len(r.gifs) {
		maxRows = len(r.gifs)
	}

	for i := 0; i < maxRows; i++ {
		gif := r.gifs[i]
		title := styles.Truncate(gif.DisplayTitle(), r.titleWidth())
		dims := gif.Dimensions()

		// Selected rows render plain text; nesting the badge style inside
		// a styled row breaks the background
		if i == r.cursor {
			line := title
			if dims != "" {
				line = dims + " " + title
			}
			b.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			var line strings.Builder
			if dims != "" {
				line.WriteString(styles.BadgeStyle.Render(dims))
				line.WriteString(" ")
			}
			line.WriteString(title)
			b.WriteString(styles.NormalItemStyle.Render(line.String()))
		}
		b.WriteString("\n")

		if i == r.cursor && gif.URL != "" {
			b.WriteString("  ")
			b.WriteString(styles.DimStyle.Render(styles.Truncate(gif.URL, r.titleWidth())))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (r ResultsPane) titleWidth() int {
	w := r.width - 14
	if w < 20 {
		w = 20
	}
	return w
}

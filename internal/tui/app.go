package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gifdex/gifdex/internal/domain"
	"github.com/gifdex/gifdex/internal/service"
	"github.com/gifdex/gifdex/internal/tui/components"
	"github.com/gifdex/gifdex/internal/tui/styles"
)

// Focus identifies which pane receives keyboard input
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
	FocusHistory
)

const statusTimeout = 4 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	Svc *service.SearchService

	// UI components
	Input   components.SearchInput
	Results components.ResultsPane
	History components.HistoryPanel

	// Search updates flow from the service observer through this channel
	updates chan domain.SearchUpdate

	// The tag replayed as the initial search, empty to skip
	initialTag string

	// Dimensions
	Width  int
	Height int

	// UI state
	focus       Focus
	StatusMsg   string
	StatusIsErr bool
	Loading     bool
}

// NewModel creates a new application model. initialTag, when non-empty, is
// searched as soon as the program starts.
func NewModel(svc *service.SearchService, initialTag string) Model {
	updates := make(chan domain.SearchUpdate, 16)
	svc.SetObserver(NewChannelObserver(updates))

	return Model{
		Svc:        svc,
		Input:      components.NewSearchInput(),
		Results:    components.NewResultsPane(),
		History:    components.NewHistoryPanel(svc.TagsHistory()),
		updates:    updates,
		initialTag: initialTag,
		focus:      FocusInput,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.Input.Init(),
		ListenForUpdatesCmd(m.updates),
	}
	if m.initialTag != "" {
		tag := m.initialTag
		cmds = append(cmds, func() tea.Msg {
			return SearchRequestedMsg{Tag: tag}
		})
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SearchRequestedMsg:
		return m.submitSearch(msg.Tag)

	case SearchUpdateMsg:
		return m.handleSearchUpdate(msg.Update)

	case HistoryChangedMsg:
		m.History.SetTags(msg.Tags)
		return m, nil

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Blink and other component messages
	var cmd tea.Cmd
	m.Input, cmd, _, _ = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.cycleFocus()
		return m, nil

	case "esc":
		m.setFocus(FocusInput)
		return m, nil
	}

	switch m.focus {
	case FocusInput:
		var cmd tea.Cmd
		var value string
		var committed bool
		m.Input, cmd, value, committed = m.Input.Update(msg)
		if committed {
			// Forwarded unmodified; the service rejects the empty tag
			return m.submitSearch(value)
		}
		return m, cmd

	case FocusResults:
		m.Results = m.Results.Update(msg)
		return m, nil

	case FocusHistory:
		var cmd tea.Cmd
		var action components.HistoryAction
		var tag string
		m.History, cmd, action, tag = m.History.Update(msg)

		switch action {
		case components.HistoryActionSearch:
			return m.submitSearch(tag)
		case components.HistoryActionRemove:
			return m, RemoveTagCmd(m.Svc, tag)
		case components.HistoryActionClear:
			return m, ClearHistoryCmd(m.Svc)
		}
		return m, cmd
	}

	return m, nil
}

// submitSearch starts a search for the tag. An empty tag is ignored
// without touching history or the network.
func (m Model) submitSearch(tag string) (tea.Model, tea.Cmd) {
	if tag == "" {
		return m, nil
	}

	m.Loading = true
	m.StatusMsg = fmt.Sprintf("Searching %q...", tag)
	m.StatusIsErr = false
	return m, SearchCmd(m.Svc, tag)
}

func (m Model) handleSearchUpdate(update domain.SearchUpdate) (tea.Model, tea.Cmd) {
	m.Loading = false

	// History mutates as part of every non-empty search
	m.History.SetTags(m.Svc.TagsHistory())

	switch {
	case update.Err != nil:
		m.StatusMsg = fmt.Sprintf("Search %q failed: %v", update.Query, update.Err)
		m.StatusIsErr = true

	case update.Stale:
		// A newer search already replaced the results; keep them
		m.StatusMsg = fmt.Sprintf("Ignored stale response for %q", update.Query)
		m.StatusIsErr = false

	default:
		m.Results.SetResults(update.Query, update.Results)
		m.StatusMsg = fmt.Sprintf("%d results for %q", len(update.Results), update.Query)
		m.StatusIsErr = false
	}

	return m, tea.Batch(
		ListenForUpdatesCmd(m.updates),
		ClearStatusCmd(statusTimeout),
	)
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case FocusInput:
		m.setFocus(FocusResults)
	case FocusResults:
		m.setFocus(FocusHistory)
	default:
		m.setFocus(FocusInput)
	}
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusInput {
		m.Input.Focus()
	} else {
		m.Input.Blur()
	}
	if f == FocusHistory {
		m.History.Focus()
	} else {
		m.History.Blur()
	}
}

func (m *Model) layout() {
	m.Input.SetWidth(m.Width - 8)
	m.Results.SetSize(m.resultsWidth(), m.Height-8)
	m.History.SetSize(m.historyWidth(), m.Height-8)
}

func (m Model) resultsWidth() int {
	w := m.Width * 2 / 3
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) historyWidth() int {
	w := m.Width - m.resultsWidth() - 4
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.Width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("gifdex") + " " +
		styles.DimStyle.Render("tag search")

	input := m.Input.View()

	resultsBorder := styles.InactiveBorder
	if m.focus == FocusResults {
		resultsBorder = styles.ActiveBorder
	}
	historyBorder := styles.InactiveBorder
	if m.focus == FocusHistory {
		historyBorder = styles.ActiveBorder
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		resultsBorder.Width(m.resultsWidth()).Render(m.Results.View()),
		historyBorder.Width(m.historyWidth()).Render(m.History.View()),
	)

	status := m.statusLine()

	return lipgloss.JoinVertical(lipgloss.Left, header, input, body, status)
}

func (m Model) statusLine() string {
	if m.Loading && m.StatusMsg == "" {
		return styles.StatusStyle.Render("Searching...")
	}
	if m.StatusMsg == "" {
		return styles.DimStyle.Render("tab: switch pane · enter: search · ctrl+d: remove tag · ctrl+x: clear · ctrl+c: quit")
	}
	if m.StatusIsErr {
		return styles.StatusErrorStyle.Render(m.StatusMsg)
	}
	return styles.StatusStyle.Render(m.StatusMsg)
}

package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sermonvault/internal/adapters/tui/styles"
	"sermonvault/internal/application/commands"
	"sermonvault/internal/config"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Yank   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "yank path"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel is the model for the live search view. It filters the cached
// snapshot in memory; typing never touches the disk.
type SearchModel struct {
	index ports.SermonIndex

	input   textinput.Model
	records []domain.SermonRecord
	results []domain.SermonRecord
	cursor  int

	width  int
	height int
}

// NewSearchModel creates a new search view model
func NewSearchModel(index ports.SermonIndex) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search sermons..."
	input.Focus()

	return &SearchModel{
		index: index,
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecords)
}

func (m *SearchModel) loadRecords() tea.Msg {
	snapshot, err := commands.NewEnsureIndexCommand(m.index, config.IndexMaxAge).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return indexLoadedMsg{snapshot}
}

// Reset clears the previous query and results
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.input.Focus()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case indexLoadedMsg:
		m.records = msg.snapshot.Sermons
		m.filter()
		return m, nil

	case errMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Open):
			if r := m.selectedResult(); r != nil {
				path := r.FilePath
				return m, func() tea.Msg {
					return OpenFileMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Yank):
			if r := m.selectedResult(); r != nil {
				clipboard.WriteAll(r.FilePath)
			}
			return m, nil
		}
	}

	// Update input and refilter on every change
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

func (m *SearchModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.results = nil
		m.cursor = 0
		return
	}

	results := domain.Search(m.records, domain.SearchFilters{Query: query})
	domain.SortByDate(results, false)
	m.results = results
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}

func (m *SearchModel) selectedResult() *domain.SermonRecord {
	if m.cursor >= 0 && m.cursor < len(m.results) {
		return &m.results[m.cursor]
	}
	return nil
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if strings.TrimSpace(m.input.Value()) != "" {
			b.WriteString(styles.MutedText.Render("No sermons found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type to search titles, tags, locations and notes"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		// Show max 10 results
		maxResults := 10
		if len(m.results) < maxResults {
			maxResults = len(m.results)
		}

		for i := 0; i < maxResults; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > 10 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-10)))
		}
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("open"),
		styles.HelpKey.Render("ctrl+y"),
		styles.HelpDesc.Render("yank path"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(r domain.SermonRecord, selected bool) string {
	text := fmt.Sprintf("%s %s  %s", r.FileFormat.Icon(), styles.RowDate.Render(r.Date), summarizeRecord(r))
	if selected {
		return styles.RowSelected.Render(fmt.Sprintf("%s %s  %s", r.FileFormat.Icon(), r.Date, summarizeRecord(r)))
	}
	return text
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

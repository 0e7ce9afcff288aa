package views

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sermonvault/internal/adapters/tui/styles"
	"sermonvault/internal/application/commands"
	"sermonvault/internal/config"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Edit   key.Binding
	Yank   key.Binding
	Rescan key.Binding
	Search key.Binding
	Stats  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit metadata"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank path"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserRow is one visible line: either a year header or a sermon
type browserRow struct {
	year   int
	record *domain.SermonRecord
}

func (r browserRow) isHeader() bool {
	return r.record == nil
}

// BrowserModel is the model for the year-grouped sermon list
type BrowserModel struct {
	index ports.SermonIndex

	snapshot *domain.IndexSnapshot
	rows     []browserRow
	cursor   int

	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(index ports.SermonIndex) *BrowserModel {
	return &BrowserModel{index: index}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadIndex
}

func (m *BrowserModel) loadIndex() tea.Msg {
	snapshot, err := commands.NewEnsureIndexCommand(m.index, config.IndexMaxAge).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return indexLoadedMsg{snapshot}
}

func (m *BrowserModel) rescan() tea.Msg {
	snapshot, err := commands.NewRebuildIndexCommand(m.index).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return indexLoadedMsg{snapshot}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case indexLoadedMsg:
		m.snapshot = msg.snapshot
		m.refreshRows()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case successMsg:
		m.message = msg.message
		m.messageErr = false
		return m, nil

	case tea.KeyMsg:
		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			if r := m.selectedRecord(); r != nil {
				path := r.FilePath
				return m, func() tea.Msg {
					return OpenFileMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if r := m.selectedRecord(); r != nil {
				path := r.MetadataPath
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if r := m.selectedRecord(); r != nil {
				clipboard.WriteAll(r.FilePath)
				m.message = fmt.Sprintf("Copied %s", r.FileName)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Rescan):
			m.message = "Rescanning..."
			return m, m.rescan

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Stats):
			return m, func() tea.Msg {
				return SwitchToStatsMsg{}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) moveCursor(delta int) {
	next := m.cursor + delta
	// skip year headers
	for next >= 0 && next < len(m.rows) && m.rows[next].isHeader() {
		next += delta
	}
	if next >= 0 && next < len(m.rows) {
		m.cursor = next
	}
}

func (m *BrowserModel) selectedRecord() *domain.SermonRecord {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor].record
	}
	return nil
}

func (m *BrowserModel) refreshRows() {
	m.rows = nil
	if m.snapshot == nil {
		return
	}

	records := append([]domain.SermonRecord(nil), m.snapshot.Sermons...)
	domain.SortByDate(records, false)
	groups := domain.GroupByYear(records)

	years := make([]int, 0, len(groups))
	for year := range groups {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	for _, year := range years {
		m.rows = append(m.rows, browserRow{year: year})
		for i := range groups[year] {
			m.rows = append(m.rows, browserRow{year: year, record: &groups[year][i]})
		}
	}

	// Cursor starts on the first sermon, not the header
	m.cursor = 0
	if len(m.rows) > 0 && m.rows[0].isHeader() {
		m.moveCursor(1)
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.snapshot == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("SermonVault"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d sermons", m.snapshot.TotalCount)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("No sermons indexed yet. Press r to scan the vault."))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		b.WriteString(m.renderRow(row, i == m.cursor))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderRow(row browserRow, selected bool) string {
	if row.isHeader() {
		return styles.YearHeader.Render(fmt.Sprintf("%d", row.year))
	}

	r := row.record
	line := fmt.Sprintf("  %s %s  %s", r.FileFormat.Icon(), r.Date, summarizeRecord(*r))
	tags := ""
	if len(r.Tags) > 0 {
		tags = "#" + strings.Join(r.Tags, " #")
	}

	if selected {
		if tags != "" {
			line += "  " + tags
		}
		return styles.RowSelected.Render(line)
	}
	if tags != "" {
		line += "  " + styles.RowTag.Render(tags)
	}
	return line
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"enter", "open"},
		{"e", "edit"},
		{"y", "yank"},
		{"/", "search"},
		{"s", "stats"},
		{"r", "rescan"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload refetches the index
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadIndex
}

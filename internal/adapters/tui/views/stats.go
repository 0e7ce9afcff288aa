package views

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sermonvault/internal/adapters/tui/styles"
	"sermonvault/internal/application/commands"
	"sermonvault/internal/ports"
)

// StatsKeyMap defines key bindings for the stats view
type StatsKeyMap struct {
	Close key.Binding
}

var StatsKeys = StatsKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "s"),
		key.WithHelp("esc/q/s", "close"),
	),
}

// StatsModel shows aggregate counts over the indexed archive
type StatsModel struct {
	index ports.SermonIndex

	result *commands.StatsResult

	width  int
	height int
	err    error
}

// NewStatsModel creates a new stats view model
func NewStatsModel(index ports.SermonIndex) *StatsModel {
	return &StatsModel{index: index}
}

// Init initializes the stats view
func (m *StatsModel) Init() tea.Cmd {
	return m.loadStats
}

func (m *StatsModel) loadStats() tea.Msg {
	result, err := commands.NewStatsCommand(m.index).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return statsLoadedMsg{result}
}

type statsLoadedMsg struct {
	result *commands.StatsResult
}

// Update handles messages for the stats view
func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsLoadedMsg:
		m.result = msg.result
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, StatsKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the stats view
func (m *StatsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Statistics"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorMsg.Render(m.err.Error()))
		return styles.App.Render(b.String())
	}
	if m.result == nil {
		b.WriteString("Loading...")
		return styles.App.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("Total sermons: %d\n", m.result.TotalCount))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(
		"Last scanned: %s", time.UnixMilli(m.result.LastScanned).Format("2006-01-02 15:04"),
	)))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("By year"))
	b.WriteString("\n")
	years := make([]int, 0, len(m.result.Stats.ByYear))
	for year := range m.result.Stats.ByYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	for _, year := range years {
		b.WriteString(statLine(fmt.Sprintf("%d", year), m.result.Stats.ByYear[year]))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("By format"))
	b.WriteString("\n")
	for _, format := range m.result.Options.Formats {
		b.WriteString(statLine(format.DisplayName(), m.result.Stats.ByFormat[format]))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("By location"))
	b.WriteString("\n")
	for _, location := range m.result.Options.Locations {
		b.WriteString(statLine(location, m.result.Stats.ByLocation[location]))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("By service"))
	b.WriteString("\n")
	for _, service := range m.result.Options.Services {
		b.WriteString(statLine(service, m.result.Stats.ByService[service]))
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func statLine(label string, count int) string {
	return fmt.Sprintf("  %s%d\n", padRight(label, 24), count)
}

// SetSize updates the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

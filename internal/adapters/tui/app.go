package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sermonvault/internal/adapters/editor"
	"sermonvault/internal/adapters/tui/views"
	"sermonvault/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewStats
	ViewHelp
)

// App is the main TUI application model
type App struct {
	index  ports.SermonIndex
	opener ports.FileOpener
	editor *editor.Opener

	state   ViewState
	browser *views.BrowserModel
	search  *views.SearchModel
	stats   *views.StatsModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(index ports.SermonIndex, opener ports.FileOpener, ed *editor.Opener) *App {
	return &App{
		index:   index,
		opener:  opener,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(index),
		search:  views.NewSearchModel(index),
		stats:   views.NewStatsModel(index),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.stats.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToStatsMsg:
		a.state = ViewStats
		return a, a.stats.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.OpenFileMsg:
		return a, a.openFile(msg.Path)

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewStats:
		_, cmd = a.stats.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type openFinishedMsg struct{ err error }

func (a *App) openFile(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}
	return func() tea.Msg {
		return openFinishedMsg{err: a.opener.OpenFile(path)}
	}
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return openFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return openFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewStats:
		return a.stats.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}

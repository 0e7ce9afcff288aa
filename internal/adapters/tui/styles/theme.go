package styles

import (
	"github.com/charmbracelet/lipgloss"

	"sermonvault/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Format colors
	FormatKeynote    = lipgloss.Color("#6366F1") // Indigo
	FormatPages      = lipgloss.Color("#F97316") // Orange
	FormatPDF        = lipgloss.Color("#EF4444") // Red
	FormatWord       = lipgloss.Color("#60A5FA") // Blue
	FormatPowerPoint = lipgloss.Color("#EC4899") // Pink
	FormatMarkdown   = lipgloss.Color("#8B5CF6") // Violet

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List styles
	YearHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowDate = lipgloss.NewStyle().
		Foreground(Muted)

	RowTag = lipgloss.NewStyle().
		Foreground(Warning)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// FormatColor returns the color for a sermon file format
func FormatColor(format domain.FileFormat) lipgloss.Color {
	switch format {
	case domain.FormatKeynote:
		return FormatKeynote
	case domain.FormatPages:
		return FormatPages
	case domain.FormatPDF:
		return FormatPDF
	case domain.FormatWord:
		return FormatWord
	case domain.FormatPowerPoint:
		return FormatPowerPoint
	case domain.FormatMarkdown, domain.FormatNotes:
		return FormatMarkdown
	default:
		return Primary
	}
}

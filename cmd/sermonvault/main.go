package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sermonvault/internal/adapters/editor"
	"sermonvault/internal/adapters/filesystem"
	"sermonvault/internal/adapters/index"
	"sermonvault/internal/adapters/opener"
	"sermonvault/internal/adapters/tui"
	"sermonvault/internal/config"
)

func main() {
	// The terminal belongs to the TUI; keep logs out of it
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))

	if _, err := config.EnsureAppDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	fs := filesystem.New()
	vaultPath := filesystem.ExpandHome(config.VaultPath())
	sermonIndex := index.NewCache(fs, vaultPath)
	fileOpener := opener.NewOpener()
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(sermonIndex, fileOpener, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

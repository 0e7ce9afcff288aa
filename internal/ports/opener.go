package ports

import "os/exec"

// EditorOpener opens metadata files in the user's text editor
type EditorOpener interface {
	// OpenFile opens the file in the editor chosen via $EDITOR/$VISUAL
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor.
	// Useful for integrating with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}

// FileOpener opens sermon artifacts (Keynote, PDF, ...) with the operating
// system's default application for the file type.
type FileOpener interface {
	OpenFile(path string) error
}

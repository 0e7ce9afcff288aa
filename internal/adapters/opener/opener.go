package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener implements ports.FileOpener by handing the path to the operating
// system's default application for the file type. Keynote and Pages files
// open in their apps on macOS, PDFs in the system viewer, and so on.
type Opener struct{}

// NewOpener creates a new file opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens the sermon artifact with the platform's file opener
func (o *Opener) OpenFile(path string) error {
	cmd, err := openCommand(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

func openCommand(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

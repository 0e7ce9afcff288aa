// Package filesystem implements ports.FileSystem on the local disk.
package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"sermonvault/internal/ports"
)

// FS implements ports.FileSystem using the operating system
type FS struct{}

var _ ports.FileSystem = (*FS)(nil)

// New creates a new OS-backed file system
func New() *FS {
	return &FS{}
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ListFiles enumerates regular files under root. Hidden files and
// directories are skipped.
func (f *FS) ListFiles(root string, recursive bool) ([]string, error) {
	root = ExpandHome(root)

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory: %w", err)
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			files = append(files, filepath.Join(root, entry.Name()))
		}
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip unreadable subtrees
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, nil
}

// ReadText reads a UTF-8 text file
func (f *FS) ReadText(path string) (string, error) {
	content, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(content), nil
}

// WriteText fully overwrites path with content, creating the parent
// directory if needed. The write is atomic: readers never observe a
// partially written file.
func (f *FS) WriteText(path, content string) error {
	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// PathExists reports whether path exists
func (f *FS) PathExists(path string) bool {
	_, err := os.Stat(ExpandHome(path))
	return err == nil
}

// CopyFile copies a regular file, creating the destination's parent
// directory if needed
func (f *FS) CopyFile(src, dst string) error {
	src = ExpandHome(src)
	dst = ExpandHome(dst)

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy: %w", err)
	}
	return out.Close()
}

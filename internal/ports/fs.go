package ports

// FileSystem is the file-tree collaborator the core scans and persists
// through. Implementations own directory creation for writes.
type FileSystem interface {
	// ListFiles enumerates regular files under root, optionally recursing
	// into subdirectories.
	ListFiles(root string, recursive bool) ([]string, error)

	// ReadText reads a UTF-8 text file.
	ReadText(path string) (string, error)

	// WriteText fully overwrites a UTF-8 text file, creating the parent
	// directory if needed.
	WriteText(path, content string) error

	// PathExists reports whether path exists.
	PathExists(path string) bool

	// CopyFile copies a regular file, creating the destination's parent
	// directory if needed.
	CopyFile(src, dst string) error
}

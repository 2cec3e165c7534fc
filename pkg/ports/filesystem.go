package ports

// FileSystem abstracts the file operations the badge core needs: inspecting
// encode attempts, discarding losers and committing the winner by rename.
type FileSystem interface {
	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// FileSize returns the size of a file in bytes.
	FileSize(path string) (int64, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// Rename atomically moves a file, replacing any existing destination.
	Rename(oldPath, newPath string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error
}

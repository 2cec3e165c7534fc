package mocks

import (
	"fmt"
	"sync"

	"github.com/user/badgemaker/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem tracking file
// sizes in memory.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string]int64

	ExistsFunc   func(path string) (bool, error)
	FileSizeFunc func(path string) (int64, error)
	RemoveFunc   func(path string) error
	RenameFunc   func(oldPath, newPath string) error
	MkdirAllFunc func(path string) error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string]int64),
	}
}

// SetFileSize registers a file with the given size (for test setup).
func (m *FileSystem) SetFileSize(path string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = size
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *FileSystem) FileSize(path string) (int64, error) {
	if m.FileSizeFunc != nil {
		return m.FileSizeFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if size, ok := m.files[path]; ok {
		return size, nil
	}
	return 0, fmt.Errorf("file not found: %s", path)
}

func (m *FileSystem) Remove(path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("file not found: %s", path)
	}
	delete(m.files, path)
	return nil
}

func (m *FileSystem) Rename(oldPath, newPath string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(oldPath, newPath)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	size, ok := m.files[oldPath]
	if !ok {
		return fmt.Errorf("file not found: %s", oldPath)
	}
	delete(m.files, oldPath)
	m.files[newPath] = size
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	return nil
}

// GetFileSize returns a file's registered size (for test verification).
func (m *FileSystem) GetFileSize(path string) (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	size, ok := m.files[path]
	return size, ok
}

// AllFiles returns the current file set (for test verification).
func (m *FileSystem) AllFiles() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]int64, len(m.files))
	for k, v := range m.files {
		result[k] = v
	}
	return result
}

var _ ports.FileSystem = (*FileSystem)(nil)

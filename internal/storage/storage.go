package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Reader is the read side of the filesystem as seen by trash directories.
type Reader interface {
	Exists(path string) bool
	EntriesIfDirExists(path string) ([]string, error)
	ContentsOf(path string) (string, error)
}

// Remover deletes trash artifacts.
type Remover interface {
	// RemoveFile removes a single file. A missing file is an error.
	RemoveFile(path string) error
	// RemoveFileIfExists removes a backup copy, which may be a whole
	// directory tree. A missing path is not an error.
	RemoveFileIfExists(path string) error
}

// Storage is the full set of filesystem operations the commands need.
type Storage interface {
	Reader
	Remover
}

// OS is Storage backed by the real filesystem.
type OS struct{}

func NewOS() *OS {
	return &OS{}
}

func (s *OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (s *OS) EntriesIfDirExists(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

func (s *OS) ContentsOf(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}

	return string(data), nil
}

func (s *OS) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %q: %w", path, err)
	}

	return nil
}

func (s *OS) RemoveFileIfExists(path string) error {
	if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %q: %w", path, err)
	}

	return nil
}

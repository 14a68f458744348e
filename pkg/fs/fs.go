// Package fs provides a thin local-filesystem adapter so services can be
// tested against fakes instead of the real disk.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Reads the entire file at filePath.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return data, nil
}

// Writes contents to filePath, creating parent directories as needed.
func (lfs *LocalFileSystem) WriteFile(filePath string, permission os.FileMode, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directories for %s: %w", filePath, err)
	}

	if err := os.WriteFile(filePath, contents, permission); err != nil {
		return fmt.Errorf("error writing file %s: %w", filePath, err)
	}
	return nil
}

// Opens the file at filePath for reading.
func (lfs *LocalFileSystem) Open(filePath string) (*os.File, error) {
	return os.Open(filePath)
}

// Reports whether the path exists.
func (lfs *LocalFileSystem) Exists(filePath string) (bool, error) {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Deletes the file at filePath.
func (lfs *LocalFileSystem) DeleteFile(filePath string) error {
	return os.Remove(filePath)
}

package ports

import "os"

// FileSystemPort abstracts the file operations the manifest service
// performs, so tests can substitute fakes for the real disk.
type FileSystemPort interface {
	ReadFile(filePath string) ([]byte, error)
	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	Open(filePath string) (*os.File, error)
	Exists(filePath string) (bool, error)
	DeleteFile(filePath string) error
}

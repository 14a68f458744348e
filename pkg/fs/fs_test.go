package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadFile(t *testing.T) {
	lfs := NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.bin")

	require.NoError(t, lfs.WriteFile(path, 0644, []byte("contents")))

	data, err := lfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("contents"), data)

	exists, err := lfs.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsOnMissingPath(t *testing.T) {
	lfs := NewLocalFileSystem()

	exists, err := lfs.Exists(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteFile(t *testing.T) {
	lfs := NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, lfs.DeleteFile(path))

	exists, err := lfs.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

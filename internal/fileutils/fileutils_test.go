package fileutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
	// A directory is not a file.
	assert.False(t, FileExists(dir))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c"), 0o644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("a,b,c"), data)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "export.txt")

	require.NoError(t, WriteFile(path, []byte("content"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	stamp := time.Date(2025, 1, 14, 9, 30, 45, 0, time.Local)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	modTime, err := ModTime(path)
	require.NoError(t, err)
	assert.True(t, modTime.Equal(stamp))

	_, err = ModTime(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestDocumentsDir(t *testing.T) {
	dir, err := DocumentsDir()
	require.NoError(t, err)
	assert.Equal(t, "Documents", filepath.Base(dir))
}

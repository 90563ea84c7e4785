package pathops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetDirectoryCreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, ResetDirectory(dir))
	assert.DirExists(t, dir)
}

func TestResetDirectoryRemovesContents(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale-artifact.zip")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	require.NoError(t, ResetDirectory(dir))

	assert.DirExists(t, dir)
	assert.NoFileExists(t, stale)
}

func TestResetDirectoryIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")

	require.NoError(t, ResetDirectory(dir))
	require.NoError(t, ResetDirectory(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureDirectoryKeepsContents(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("data"), 0644))

	require.NoError(t, EnsureDirectory(dir))
	assert.FileExists(t, keep)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "RELEASE-NOTES.txt")
	to := filepath.Join(dir, "scm", "RELEASE-NOTES.txt")
	require.NoError(t, os.WriteFile(from, []byte("release notes"), 0644))

	require.NoError(t, CopyFile(from, to))

	content, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "release notes", string(content))
}

func TestCopyFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "src.txt")
	to := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(from, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(to, []byte("old content that is longer"), 0644))

	require.NoError(t, CopyFile(from, to))

	content, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "dst.txt"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCopy))

	details := errors.GetErrorDetails(err)
	assert.Contains(t, details["from"], "nope.txt")
}

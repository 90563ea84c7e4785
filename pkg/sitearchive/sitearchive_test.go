package sitearchive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diststage/diststage/pkg/errors"
)

func buildSite(t *testing.T) string {
	t.Helper()
	site := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(filepath.Join(site, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(site, "a.txt"), []byte("alpha"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(site, "sub", "b.txt"), []byte("beta"), 0644))
	return site
}

func TestEnumerateMissingRoot(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "no-site"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSiteMissing))
}

func TestEnumerateParentBeforeChildren(t *testing.T) {
	site := buildSite(t)

	entries, err := Enumerate(site)
	require.NoError(t, err)

	index := make(map[string]int)
	for i, e := range entries {
		rel, relErr := filepath.Rel(site, e.Path)
		require.NoError(t, relErr)
		index[filepath.ToSlash(rel)] = i
	}

	require.Contains(t, index, "sub")
	require.Contains(t, index, "sub/b.txt")
	assert.Less(t, index["sub"], index["sub/b.txt"], "parent directory must come before its children")
}

func TestEnumerateIsRestartable(t *testing.T) {
	site := buildSite(t)

	first, err := Enumerate(site)
	require.NoError(t, err)
	second, err := Enumerate(site)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestArchiveRoundTrip(t *testing.T) {
	site := buildSite(t)
	out := filepath.Join(t.TempDir(), ArchiveName)

	entries, err := Enumerate(site)
	require.NoError(t, err)
	require.NoError(t, Archive(site, out, entries))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	// Directory entries are not required, but leaf files must appear
	// exactly once each.
	assert.ElementsMatch(t, []string{"a.txt", "sub/b.txt"}, names)
}

func TestCompressWritesSiteZip(t *testing.T) {
	site := buildSite(t)
	workingDir := t.TempDir()

	archive, err := Compress(site, workingDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workingDir, ArchiveName), archive)
	assert.FileExists(t, archive)
}

func TestCompressMissingSite(t *testing.T) {
	_, err := Compress(filepath.Join(t.TempDir(), "absent"), t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSiteMissing))
}

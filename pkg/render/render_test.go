package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Header(&buf))

	assert.Contains(t, buf.String(), "source/")
	assert.Contains(t, buf.String(), "binaries/")
}

func TestReadme(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Readme(&buf, ReadmeVars{
		ArtifactID: "commons-foo",
		Version:    "1.0",
		SiteURL:    "https://example.org/foo",
	}))

	out := buf.String()
	assert.Contains(t, out, "commons-foo 1.0")
	assert.Contains(t, out, "https://example.org/foo")
}

func TestHeaderFile(t *testing.T) {
	dir := t.TempDir()

	path, err := HeaderFile(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, HeaderFileName), path)
	assert.FileExists(t, path)
}

func TestReadmeFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ReadmeFile(dir, ReadmeVars{ArtifactID: "foo", Version: "2.1", SiteURL: "https://example.org"})
	require.NoError(t, err)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "foo 2.1")
}

package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diststage/diststage/pkg/config"
	"github.com/diststage/diststage/pkg/errors"
)

func TestCompressSite(t *testing.T) {
	base := t.TempDir()
	siteDir := filepath.Join(base, "site")
	require.NoError(t, os.MkdirAll(filepath.Join(siteDir, "apidocs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<html></html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "apidocs", "a.html"), []byte("<html></html>"), 0644))

	cfg := &config.Config{
		Paths: config.Paths{
			SiteDir: siteDir,
			// Working dir does not exist yet; CompressSite initializes it
			WorkingDir: filepath.Join(base, "diststage"),
		},
	}

	archive, err := CompressSite(cfg)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.Paths.WorkingDir, "site.zip"), archive)
	assert.FileExists(t, archive)
}

func TestCompressSiteMissingSiteDir(t *testing.T) {
	base := t.TempDir()
	cfg := &config.Config{
		Paths: config.Paths{
			SiteDir:    filepath.Join(base, "no-site"),
			WorkingDir: filepath.Join(base, "diststage"),
		},
	}

	_, err := CompressSite(cfg)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSiteMissing))
	assert.Contains(t, err.Error(), "site build")
	assert.NoDirExists(t, cfg.Paths.WorkingDir, "nothing is created when the gate fails")
}

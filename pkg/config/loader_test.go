package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	baseDir := t.TempDir()

	cfg, err := Load(baseDir)
	require.NoError(t, err)

	assert.False(t, cfg.Distribution.DistModule)
	assert.False(t, cfg.Distribution.DryRun)
	assert.Empty(t, cfg.Distribution.StagingURL)
	assert.Equal(t, filepath.Join(baseDir, "target", "diststage"), cfg.Paths.WorkingDir)
	assert.Equal(t, filepath.Join(baseDir, "target", "diststage", "scm"), cfg.Paths.CheckoutDir)
	assert.Equal(t, filepath.Join(baseDir, "RELEASE-NOTES.txt"), cfg.Distribution.ReleaseNotes)
}

func TestLoadProjectTomlOverrides(t *testing.T) {
	baseDir := t.TempDir()
	content := `
[project]
artifact_id = "commons-foo"
version = "1.0"
site_url = "https://example.org/foo"

[distribution]
dist_module = true
staging_url = "scm:svn:https://dist.example.org/repos/dist/dev/foo"
`
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "diststage.toml"), []byte(content), 0644))

	cfg, err := Load(baseDir)
	require.NoError(t, err)

	assert.Equal(t, "commons-foo", cfg.Project.ArtifactID)
	assert.Equal(t, "1.0", cfg.Project.Version)
	assert.True(t, cfg.Distribution.DistModule)
	assert.Equal(t, "scm:svn:https://dist.example.org/repos/dist/dev/foo", cfg.Distribution.StagingURL)
	// Unset options keep their defaults
	assert.Equal(t, filepath.Join(baseDir, "target", "site"), cfg.Paths.SiteDir)
}

func TestLoadProjectYamlOverrides(t *testing.T) {
	baseDir := t.TempDir()
	content := `
distribution:
  dist_module: true
  dry_run: true
`
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "diststage.yaml"), []byte(content), 0644))

	cfg, err := Load(baseDir)
	require.NoError(t, err)

	assert.True(t, cfg.Distribution.DistModule)
	assert.True(t, cfg.Distribution.DryRun)
}

func TestLoadEnvOverrides(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("DISTSTAGE_DISTRIBUTION__DRY_RUN", "true")
	t.Setenv("DISTSTAGE_AUTH__USERNAME", "deploy")

	cfg, err := Load(baseDir)
	require.NoError(t, err)

	assert.True(t, cfg.Distribution.DryRun)
	assert.Equal(t, "deploy", cfg.Auth.Username)
}

func TestLoadAbsolutePathsKept(t *testing.T) {
	baseDir := t.TempDir()
	notes := filepath.Join(t.TempDir(), "NOTES.txt")
	content := "[distribution]\nrelease_notes = \"" + notes + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "diststage.toml"), []byte(content), 0644))

	cfg, err := Load(baseDir)
	require.NoError(t, err)

	assert.Equal(t, notes, cfg.Distribution.ReleaseNotes)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "distribution.staging_url", envKey("DISTSTAGE_DISTRIBUTION__STAGING_URL"))
	assert.Equal(t, "auth.password", envKey("DISTSTAGE_AUTH__PASSWORD"))
}

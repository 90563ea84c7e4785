package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.False(t, cfg.Distribution.DistModule)
	assert.Equal(t, "target/diststage", cfg.Paths.WorkingDir)
	assert.Equal(t, "RELEASE-NOTES.txt", cfg.Distribution.ReleaseNotes)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "[distribution]")
	assert.Contains(t, content, "[paths]")

	// No active assignments: every value line is commented out
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"),
			"unexpected active line: %q", line)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Paths.WorkingDir = ""
	assert.Error(t, cfg.Validate())
}

package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/diststage/diststage/pkg/errors"
)

// Default returns the built-in configuration values, without any project
// file or environment overrides applied.
func Default() (*Config, error) {
	var cfg Config
	if err := gotoml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	return &cfg, nil
}

// GenerateConfigContent renders a starter diststage.toml: the defaults
// marshaled to TOML with every value line commented out, so nothing takes
// effect until the user uncomments it.
func GenerateConfigContent() (string, error) {
	defaults, err := Default()
	if err != nil {
		return "", err
	}

	marshaled, err := gotoml.Marshal(defaults)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal defaults")
	}

	return commentOutConfigValues(string(marshaled)), nil
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, existing comments, and [section] headers as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
)

// envPrefix namespaces the environment variable overrides, e.g.
// DISTSTAGE_DISTRIBUTION__DRY_RUN=true sets distribution.dry_run.
const envPrefix = "DISTSTAGE_"

// configFileNames are probed in order inside the project base directory.
var configFileNames = []string{
	"diststage.toml",
	".diststage.toml",
	"diststage.yaml",
	"diststage.yml",
}

// Load builds the run configuration for the project rooted at baseDir:
// embedded defaults, then the project config file (if any), then DISTSTAGE_*
// environment variables. Empty project coordinates are filled from the
// configured pom file, and relative paths are resolved against baseDir.
func Load(baseDir string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if path := findConfigFile(baseDir); path != "" {
		parser := parserFor(path)
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config file")
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Resolve(baseDir)

	if cfg.Project.Pom != "" {
		if err := applyPom(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DISTSTAGE_SECTION__KEY_NAME to section.key_name.
func envKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

func findConfigFile(baseDir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(baseDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

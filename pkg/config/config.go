// Package config loads and validates the diststage run configuration. All
// recognized options and their defaults live in embedded/defaults.toml;
// a per-project diststage.toml or diststage.yaml and DISTSTAGE_* environment
// variables override them. The resulting Config is threaded explicitly
// through every workflow entry point.
package config

import (
	"path/filepath"

	"github.com/diststage/diststage/pkg/errors"
)

// Project holds the coordinates of the release being staged.
type Project struct {
	ArtifactID string `koanf:"artifact_id" toml:"artifact_id"`
	Version    string `koanf:"version" toml:"version"`
	SiteURL    string `koanf:"site_url" toml:"site_url"`
	// Pom optionally points at a Maven pom.xml from which empty
	// coordinates are filled in.
	Pom string `koanf:"pom" toml:"pom"`
}

// Distribution holds the staging gates and targets.
type Distribution struct {
	// DistModule must be set for the staging and promotion workflows to
	// run at all.
	DistModule   bool   `koanf:"dist_module" toml:"dist_module"`
	StagingURL   string `koanf:"staging_url" toml:"staging_url"`
	ReleaseURL   string `koanf:"release_url" toml:"release_url"`
	DryRun       bool   `koanf:"dry_run" toml:"dry_run"`
	ReleaseNotes string `koanf:"release_notes" toml:"release_notes"`
}

// Paths holds the local directories the workflows operate on. Relative
// entries are resolved against the project base directory.
type Paths struct {
	WorkingDir         string `koanf:"working_dir" toml:"working_dir"`
	CheckoutDir        string `koanf:"checkout_dir" toml:"checkout_dir"`
	StagingCheckoutDir string `koanf:"staging_checkout_dir" toml:"staging_checkout_dir"`
	ReleaseCheckoutDir string `koanf:"release_checkout_dir" toml:"release_checkout_dir"`
	SiteDir            string `koanf:"site_dir" toml:"site_dir"`
}

// Auth authenticates against the distribution repositories.
type Auth struct {
	Username string `koanf:"username" toml:"username"`
	Password string `koanf:"password" toml:"password"`
}

// Config is the full, validated run configuration.
type Config struct {
	Project      Project      `koanf:"project" toml:"project"`
	Distribution Distribution `koanf:"distribution" toml:"distribution"`
	Paths        Paths        `koanf:"paths" toml:"paths"`
	Auth         Auth         `koanf:"auth" toml:"auth"`
}

// Validate checks structural invariants. Gating conditions like an unset
// staging URL are precondition skips handled by the workflows, not
// configuration errors.
func (c *Config) Validate() error {
	if c.Paths.WorkingDir == "" {
		return errors.New(errors.ErrConfigInvalid, "paths.working_dir must not be empty")
	}
	if c.Paths.CheckoutDir == "" {
		return errors.New(errors.ErrConfigInvalid, "paths.checkout_dir must not be empty")
	}
	if c.Distribution.ReleaseNotes == "" {
		return errors.New(errors.ErrConfigInvalid, "distribution.release_notes must not be empty")
	}
	return nil
}

// Resolve makes every relative path absolute against baseDir.
func (c *Config) Resolve(baseDir string) {
	c.Paths.WorkingDir = resolvePath(baseDir, c.Paths.WorkingDir)
	c.Paths.CheckoutDir = resolvePath(baseDir, c.Paths.CheckoutDir)
	c.Paths.StagingCheckoutDir = resolvePath(baseDir, c.Paths.StagingCheckoutDir)
	c.Paths.ReleaseCheckoutDir = resolvePath(baseDir, c.Paths.ReleaseCheckoutDir)
	c.Paths.SiteDir = resolvePath(baseDir, c.Paths.SiteDir)
	c.Distribution.ReleaseNotes = resolvePath(baseDir, c.Distribution.ReleaseNotes)
	c.Project.Pom = resolvePath(baseDir, c.Project.Pom)
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

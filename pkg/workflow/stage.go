// Package workflow drives the release operations end to end: staging a
// release into the distribution area, compressing the documentation site,
// and preparing a promotion from staging to release.
//
// Unmet business-rule gates (not a distribution module, unset URLs, nothing
// built) are not errors: workflows report them as a Skip and the run exits
// cleanly. Real I/O and backend failures propagate as errors and fail the
// build step.
package workflow

import (
	"context"
	"os"

	"github.com/diststage/diststage/pkg/config"
	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
	"github.com/diststage/diststage/pkg/pathops"
	"github.com/diststage/diststage/pkg/render"
	"github.com/diststage/diststage/pkg/staging"
	"github.com/diststage/diststage/pkg/vcs"
)

// Skip reasons reported when a precondition gate is unmet.
const (
	SkipNotDistModule   = "this module is not marked as a distribution module; not running"
	SkipNoStagingURL    = "distribution.staging_url is not set; not running"
	SkipNoReleaseURL    = "distribution.release_url is not set; not running"
	SkipNoDistributions = "current project contains no distributions; not executing"
)

// StageResult reports what the staging workflow did.
type StageResult struct {
	// Skip is the gate that stopped the run, empty when the workflow ran.
	Skip string
	// DryRun is true when add/commit were deliberately not issued.
	DryRun bool
	// StagingURL is the resolved (plain) staging location.
	StagingURL string
	// Message is the commit message used (or that would have been used).
	Message string
	// Revision is the committed revision, empty in dry-run mode.
	Revision string
	// FilesToCommit is the staged commit-candidate set in plan order.
	FilesToCommit []string
}

// Skipped reports whether a precondition gate stopped the run.
func (r *StageResult) Skipped() bool { return r.Skip != "" }

// CommitMessage builds the literal staging commit message for the project
// coordinates.
func CommitMessage(artifactID, version string) string {
	return "Staging release: " + artifactID + ", version: " + version
}

// Stage runs the release staging workflow: precondition gates, checkout,
// distribution staging, then add+commit (or, in dry-run mode, logging of the
// intended commit while still performing the checkout so connectivity
// problems surface).
//
// provider may be nil, in which case it is built from the staging URL.
func Stage(ctx context.Context, cfg *config.Config, provider vcs.Provider) (*StageResult, error) {
	logger := logging.GetLogger("workflow.stage")

	if !cfg.Distribution.DistModule {
		logger.Info().Msg(SkipNotDistModule)
		return &StageResult{Skip: SkipNotDistModule}, nil
	}
	if cfg.Distribution.StagingURL == "" {
		logger.Warn().Msg(SkipNoStagingURL)
		return &StageResult{Skip: SkipNoStagingURL}, nil
	}
	if _, err := os.Stat(cfg.Paths.WorkingDir); err != nil {
		logger.Info().Str("workingDir", cfg.Paths.WorkingDir).Msg(SkipNoDistributions)
		return &StageResult{Skip: SkipNoDistributions}, nil
	}

	logger.Info().Msg("Preparing to stage distributions")

	provider, url, err := resolveProvider(provider, cfg.Distribution.StagingURL, cfg)
	if err != nil {
		return nil, err
	}

	if err := pathops.EnsureDirectory(cfg.Paths.CheckoutDir); err != nil {
		return nil, err
	}

	wc := vcs.WorkingCopy{URL: url, Dir: cfg.Paths.CheckoutDir}
	if _, err := provider.Checkout(ctx, wc); err != nil {
		return nil, err
	}

	stager := &staging.Stager{
		WorkingDir:   cfg.Paths.WorkingDir,
		CheckoutDir:  cfg.Paths.CheckoutDir,
		ReleaseNotes: cfg.Distribution.ReleaseNotes,
		Readme: render.ReadmeVars{
			ArtifactID: cfg.Project.ArtifactID,
			Version:    cfg.Project.Version,
			SiteURL:    cfg.Project.SiteURL,
		},
	}
	plan, err := stager.Stage()
	if err != nil {
		return nil, err
	}

	message := CommitMessage(cfg.Project.ArtifactID, cfg.Project.Version)
	result := &StageResult{
		DryRun:        cfg.Distribution.DryRun,
		StagingURL:    url,
		Message:       message,
		FilesToCommit: plan.FilesToCommit,
	}

	if cfg.Distribution.DryRun {
		logger.Info().Str("url", url).Msg("Would have committed to: " + url)
		logger.Info().Msg(message)
		return result, nil
	}

	if _, err := provider.Add(ctx, wc, plan.FilesToCommit, message); err != nil {
		logger.Error().Err(err).Msg("Adding dist files failed")
		return nil, errors.Wrapf(err, errors.ErrVcsAdd, "adding dist files failed")
	}

	logger.Info().Msg(message)
	commitResult, err := provider.Commit(ctx, wc, plan.FilesToCommit, message)
	if err != nil {
		// The working copy may be left with staged-but-uncommitted
		// changes; the backend's raw output is preserved for diagnosis.
		logger.Error().Err(err).Msg("Committing dist files failed")
		return nil, errors.Wrapf(err, errors.ErrVcsCommit, "committing dist files failed")
	}

	logger.Info().Str("revision", commitResult.Revision).Msg("Committed revision " + commitResult.Revision)
	result.Revision = commitResult.Revision
	return result, nil
}

// resolveProvider returns the injected provider when present (tests), or
// builds the exec-backed one for the URL. Either way the plain URL without
// the scm: prefix is returned.
func resolveProvider(provider vcs.Provider, rawURL string, cfg *config.Config) (vcs.Provider, string, error) {
	if provider != nil {
		_, url, err := vcs.SplitURL(rawURL)
		if err != nil {
			return nil, "", err
		}
		return provider, url, nil
	}
	creds := vcs.Credentials{Username: cfg.Auth.Username, Password: cfg.Auth.Password}
	return vcs.NewProvider(rawURL, creds)
}

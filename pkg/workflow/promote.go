package workflow

import (
	"context"

	"github.com/diststage/diststage/pkg/config"
	"github.com/diststage/diststage/pkg/logging"
	"github.com/diststage/diststage/pkg/pathops"
	"github.com/diststage/diststage/pkg/vcs"
)

// PromoteResult reports what the promotion workflow did. The workflow checks
// out both sides; moving the accepted artifacts between them is still a
// manual step.
type PromoteResult struct {
	// Skip is the gate that stopped the run, empty when the workflow ran.
	Skip string
	// Staging and Release are the two independent working copies.
	Staging vcs.WorkingCopy
	Release vcs.WorkingCopy
}

// Skipped reports whether a precondition gate stopped the run.
func (r *PromoteResult) Skipped() bool { return r.Skip != "" }

// Promote checks out the staging and release distribution locations into two
// independent working copies in preparation for moving accepted artifacts
// from one to the other.
//
// stagingProvider and releaseProvider may be nil, in which case they are
// built from the respective URLs.
func Promote(ctx context.Context, cfg *config.Config, stagingProvider, releaseProvider vcs.Provider) (*PromoteResult, error) {
	logger := logging.GetLogger("workflow.promote")

	if !cfg.Distribution.DistModule {
		logger.Info().Msg(SkipNotDistModule)
		return &PromoteResult{Skip: SkipNotDistModule}, nil
	}
	if cfg.Distribution.StagingURL == "" {
		logger.Warn().Msg(SkipNoStagingURL)
		return &PromoteResult{Skip: SkipNoStagingURL}, nil
	}
	if cfg.Distribution.ReleaseURL == "" {
		logger.Warn().Msg(SkipNoReleaseURL)
		return &PromoteResult{Skip: SkipNoReleaseURL}, nil
	}

	if err := pathops.EnsureDirectory(cfg.Paths.WorkingDir); err != nil {
		return nil, err
	}

	logger.Info().Msg("Preparing to promote distributions from staging to release.")

	stagingProvider, stagingURL, err := resolveProvider(stagingProvider, cfg.Distribution.StagingURL, cfg)
	if err != nil {
		return nil, err
	}
	releaseProvider, releaseURL, err := resolveProvider(releaseProvider, cfg.Distribution.ReleaseURL, cfg)
	if err != nil {
		return nil, err
	}

	if err := pathops.EnsureDirectory(cfg.Paths.StagingCheckoutDir); err != nil {
		return nil, err
	}
	if err := pathops.EnsureDirectory(cfg.Paths.ReleaseCheckoutDir); err != nil {
		return nil, err
	}

	stagingWC := vcs.WorkingCopy{URL: stagingURL, Dir: cfg.Paths.StagingCheckoutDir}
	if _, err := stagingProvider.Checkout(ctx, stagingWC); err != nil {
		return nil, err
	}

	releaseWC := vcs.WorkingCopy{URL: releaseURL, Dir: cfg.Paths.ReleaseCheckoutDir}
	if _, err := releaseProvider.Checkout(ctx, releaseWC); err != nil {
		return nil, err
	}

	logger.Info().
		Str("staging", stagingWC.Dir).
		Str("release", releaseWC.Dir).
		Msg("Both distribution locations checked out; move the accepted artifacts and commit the release side")

	return &PromoteResult{Staging: stagingWC, Release: releaseWC}, nil
}

package workflow

import (
	"os"

	"github.com/diststage/diststage/pkg/config"
	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
	"github.com/diststage/diststage/pkg/pathops"
	"github.com/diststage/diststage/pkg/sitearchive"
)

// CompressSite compresses the generated documentation site into the working
// directory's site archive and returns the archive path. A missing site
// directory is a hard failure: the site build must have run first.
func CompressSite(cfg *config.Config) (string, error) {
	logger := logging.GetLogger("workflow.compress")

	if _, err := os.Stat(cfg.Paths.SiteDir); err != nil {
		logger.Error().Str("siteDir", cfg.Paths.SiteDir).Msg("The site build was not run before this command, or the site directory does not exist")
		return "", errors.Newf(errors.ErrSiteMissing,
			"the site build was not run before this command, or site directory %s does not exist", cfg.Paths.SiteDir).
			WithDetail("siteDir", cfg.Paths.SiteDir)
	}

	if err := pathops.EnsureDirectory(cfg.Paths.WorkingDir); err != nil {
		return "", err
	}

	archive, err := sitearchive.Compress(cfg.Paths.SiteDir, cfg.Paths.WorkingDir)
	if err != nil {
		return "", err
	}

	logger.Info().Str("archive", archive).Msg("Site compressed")
	return archive, nil
}

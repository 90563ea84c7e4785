// Package staging builds the distribution tree inside a checked-out working
// copy: it classifies the build artifacts, copies them into the conventional
// layout, fans the generated HEADER/README documents out into every
// directory, and assembles the commit-candidate set.
//
// The produced layout:
//
//	<checkout-root>/
//	  HEADER.html
//	  README.html
//	  RELEASE-NOTES.txt
//	  site.zip
//	  source/
//	    <*-src artifacts>  HEADER.html  README.html
//	  binaries/
//	    <*-bin artifacts>  HEADER.html  README.html
package staging

import (
	"path/filepath"

	"github.com/diststage/diststage/pkg/classify"
	"github.com/diststage/diststage/pkg/logging"
	"github.com/diststage/diststage/pkg/pathops"
	"github.com/diststage/diststage/pkg/render"
)

// Subdirectory names inside the checkout root.
const (
	SourceDir   = "source"
	BinariesDir = "binaries"
)

// Stager stages one release into a checkout root. All paths are absolute;
// nothing here reads ambient global state.
type Stager struct {
	// WorkingDir is the flat build-output directory holding the
	// distribution artifacts (and the site archive, when built).
	WorkingDir string
	// CheckoutDir is the root of the checked-out distribution area.
	CheckoutDir string
	// ReleaseNotes is the path of the release notes file to stage.
	ReleaseNotes string
	// Readme parameterizes the generated README.html.
	Readme render.ReadmeVars
}

// Stage runs the full staging sequence and returns the plan. Any failure
// aborts immediately; a failed run is recovered by re-invoking Stage, which
// resets the source and binaries subtrees before copying.
func (s *Stager) Stage() (*Plan, error) {
	logger := logging.GetLogger("staging")
	plan := newPlan()

	sourceRoot := filepath.Join(s.CheckoutDir, SourceDir)
	binariesRoot := filepath.Join(s.CheckoutDir, BinariesDir)

	// Destructive by design: a partial previous run must not leave stale
	// artifacts behind.
	if err := pathops.ResetDirectory(binariesRoot); err != nil {
		return nil, err
	}
	if err := pathops.ResetDirectory(sourceRoot); err != nil {
		return nil, err
	}
	logger.Debug().Str("checkoutDir", s.CheckoutDir).Msg("Prepared distribution directories")

	if err := s.copyArtifacts(plan, sourceRoot, binariesRoot); err != nil {
		return nil, err
	}

	if err := s.buildDocs(plan, sourceRoot, binariesRoot); err != nil {
		return nil, err
	}

	if err := s.copyReleaseNotes(plan); err != nil {
		return nil, err
	}

	logger.Info().Int("filesToCommit", len(plan.FilesToCommit)).Msg("Staging plan finalized")
	return plan, nil
}

// copyArtifacts classifies the top-level files of the working directory and
// copies each into its bucket's destination. Directories (such as the
// checkout itself, which lives under the working directory) are never
// classified.
func (s *Stager) copyArtifacts(plan *Plan, sourceRoot, binariesRoot string) error {
	logger := logging.GetLogger("staging")

	names, err := pathops.ListFiles(s.WorkingDir)
	if err != nil {
		return err
	}

	for _, artifact := range classify.ClassifyAll(names) {
		from := filepath.Join(s.WorkingDir, artifact.Path)
		var to string
		switch artifact.Bucket {
		case classify.BucketSource:
			to = filepath.Join(sourceRoot, artifact.Path)
		case classify.BucketBinary:
			to = filepath.Join(binariesRoot, artifact.Path)
		case classify.BucketExcluded:
			logger.Debug().Str("file", artifact.Path).Msg("Not copying bookkeeping file into the distribution tree")
			continue
		default:
			to = filepath.Join(s.CheckoutDir, artifact.Path)
		}
		if err := pathops.CopyFile(from, to); err != nil {
			return err
		}
		plan.addCopy(from, to)
		plan.addCommit(to)
	}
	return nil
}

// buildDocs renders HEADER.html and README.html into the checkout root and
// replicates both into the source and binaries subtrees. The four extra
// physical copies mimic a symlink fan-out without requiring link support,
// because the target VCS may not preserve symbolic links.
func (s *Stager) buildDocs(plan *Plan, sourceRoot, binariesRoot string) error {
	headerPath, err := render.HeaderFile(s.CheckoutDir)
	if err != nil {
		return err
	}
	plan.addCommit(headerPath)

	readmePath, err := render.ReadmeFile(s.CheckoutDir, s.Readme)
	if err != nil {
		return err
	}
	plan.addCommit(readmePath)

	for _, dir := range []string{sourceRoot, binariesRoot} {
		for _, doc := range []string{headerPath, readmePath} {
			to := filepath.Join(dir, filepath.Base(doc))
			if err := pathops.CopyFile(doc, to); err != nil {
				return err
			}
			plan.addCopy(doc, to)
			plan.addCommit(to)
		}
	}
	return nil
}

// copyReleaseNotes stages the release notes file into the checkout root.
func (s *Stager) copyReleaseNotes(plan *Plan) error {
	logger := logging.GetLogger("staging")
	logger.Info().Msg("Copying RELEASE-NOTES.txt to working directory.")

	to := filepath.Join(s.CheckoutDir, filepath.Base(s.ReleaseNotes))
	if err := pathops.CopyFile(s.ReleaseNotes, to); err != nil {
		return err
	}
	plan.addCopy(s.ReleaseNotes, to)
	plan.addCommit(to)
	return nil
}

package vcs

import (
	"context"
	"regexp"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
)

// committedRevision matches the revision line svn prints after a successful
// commit, e.g. "Committed revision 12345."
var committedRevision = regexp.MustCompile(`Committed revision (\d+)`)

// SvnProvider drives the svn executable. The svn client handles incremental
// checkouts natively, so re-running checkout against an existing working copy
// updates it in place.
type SvnProvider struct {
	creds Credentials
	run   runner
}

// NewSvnProvider creates a provider backed by the svn executable.
func NewSvnProvider(creds Credentials) *SvnProvider {
	return &SvnProvider{creds: creds, run: execRunner}
}

// Checkout implements Provider.
func (p *SvnProvider) Checkout(ctx context.Context, wc WorkingCopy) (Result, error) {
	logger := logging.GetLogger("vcs.svn")
	logger.Info().Str("url", wc.URL).Str("dir", wc.Dir).Msg("Checking out dist from: " + wc.URL)

	args := append([]string{"checkout", wc.URL, wc.Dir}, p.authArgs()...)
	out, err := p.run(ctx, "", "svn", args...)
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsCheckout,
			"svn checkout of %s failed: %s", wc.URL, out).
			WithDetail("url", wc.URL).
			WithDetail("output", out)
	}
	return Result{CommandOutput: out}, nil
}

// Add implements Provider. The message is accepted for interface symmetry
// but svn has no use for it at add time.
func (p *SvnProvider) Add(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error) {
	logger := logging.GetLogger("vcs.svn")
	logger.Debug().Int("files", len(files)).Str("message", message).Msg("Adding files to working copy")

	args := append([]string{"add", "--force", "--parents"}, relativize(wc.Dir, files)...)
	out, err := p.run(ctx, wc.Dir, "svn", args...)
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsAdd,
			"svn add failed: %s", out).
			WithDetail("output", out)
	}
	return Result{CommandOutput: out}, nil
}

// Commit implements Provider.
func (p *SvnProvider) Commit(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error) {
	args := []string{"commit", "--message", message}
	args = append(args, p.authArgs()...)
	args = append(args, relativize(wc.Dir, files)...)

	out, err := p.run(ctx, wc.Dir, "svn", args...)
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsCommit,
			"svn commit failed: %s", out).
			WithDetail("output", out)
	}
	return Result{Revision: parseRevision(out), CommandOutput: out}, nil
}

func (p *SvnProvider) authArgs() []string {
	args := []string{"--non-interactive"}
	if p.creds.Username != "" {
		args = append(args, "--username", p.creds.Username)
	}
	if p.creds.Password != "" {
		args = append(args, "--password", p.creds.Password)
	}
	return args
}

func parseRevision(out string) string {
	if m := committedRevision.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	return ""
}

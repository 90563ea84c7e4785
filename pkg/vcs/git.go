package vcs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
)

// GitProvider drives the git executable. Checkout clones on first use and
// pulls on subsequent runs; Commit pushes so the staging location actually
// receives the files. Authentication and committer identity rely on the
// checkout's git configuration.
type GitProvider struct {
	creds Credentials
	run   runner
}

// NewGitProvider creates a provider backed by the git executable.
func NewGitProvider(creds Credentials) *GitProvider {
	return &GitProvider{creds: creds, run: execRunner}
}

// Checkout implements Provider.
func (p *GitProvider) Checkout(ctx context.Context, wc WorkingCopy) (Result, error) {
	logger := logging.GetLogger("vcs.git")
	logger.Info().Str("url", wc.URL).Str("dir", wc.Dir).Msg("Checking out dist from: " + wc.URL)

	var out string
	var err error
	if _, statErr := os.Stat(filepath.Join(wc.Dir, ".git")); statErr == nil {
		out, err = p.run(ctx, wc.Dir, "git", "pull", "--ff-only")
	} else {
		out, err = p.run(ctx, "", "git", "clone", wc.URL, wc.Dir)
	}
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsCheckout,
			"git checkout of %s failed: %s", wc.URL, out).
			WithDetail("url", wc.URL).
			WithDetail("output", out)
	}
	return Result{CommandOutput: out}, nil
}

// Add implements Provider.
func (p *GitProvider) Add(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error) {
	logger := logging.GetLogger("vcs.git")
	logger.Debug().Int("files", len(files)).Str("message", message).Msg("Adding files to working copy")

	args := append([]string{"add", "--"}, relativize(wc.Dir, files)...)
	out, err := p.run(ctx, wc.Dir, "git", args...)
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsAdd,
			"git add failed: %s", out).
			WithDetail("output", out)
	}
	return Result{CommandOutput: out}, nil
}

// Commit implements Provider.
func (p *GitProvider) Commit(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error) {
	// Committer identity comes from the checkout's git configuration.
	args := []string{"commit", "--message", message, "--"}
	args = append(args, relativize(wc.Dir, files)...)

	out, err := p.run(ctx, wc.Dir, "git", args...)
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsCommit,
			"git commit failed: %s", out).
			WithDetail("output", out)
	}

	rev, err := p.run(ctx, wc.Dir, "git", "rev-parse", "HEAD")
	if err != nil {
		rev = ""
	}

	pushOut, err := p.run(ctx, wc.Dir, "git", "push")
	out += pushOut
	if err != nil {
		return Result{CommandOutput: out}, errors.Wrapf(err, errors.ErrVcsCommit,
			"git push failed: %s", pushOut).
			WithDetail("output", out)
	}
	return Result{Revision: strings.TrimSpace(rev), CommandOutput: out}, nil
}

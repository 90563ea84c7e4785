// Package vcs abstracts the version-control backend behind three
// capability-shaped operations: checkout, add, and commit. Production code
// uses exec adapters over the svn and git executables; tests use
// MockProvider.
package vcs

import (
	"context"
	"strings"

	"github.com/diststage/diststage/pkg/errors"
)

// WorkingCopy binds a remote repository location to a local checkout
// directory. It is owned exclusively by the workflow that checked it out.
type WorkingCopy struct {
	// URL is the remote repository location (without the scm: prefix)
	URL string
	// Dir is the local checkout directory
	Dir string
}

// Result carries the backend's answer to an operation. CommandOutput is the
// backend's raw command output and is surfaced verbatim in errors so that a
// partially-staged working copy can be diagnosed.
type Result struct {
	Revision      string
	CommandOutput string
}

// Credentials authenticate against the remote repository.
type Credentials struct {
	Username string
	Password string
}

// Provider is the capability surface the workflows need from a
// version-control backend.
type Provider interface {
	// Checkout materializes wc.URL into wc.Dir. An existing checkout is
	// updated in place.
	Checkout(ctx context.Context, wc WorkingCopy) (Result, error)

	// Add schedules files (absolute paths under wc.Dir) for the next
	// commit. Backends that have no use for the message ignore it.
	Add(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error)

	// Commit commits the files with the message and reports the
	// resulting revision.
	Commit(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error)
}

// scmPrefix is the Maven-style URL prefix, e.g. scm:svn:https://host/repo.
const scmPrefix = "scm:"

// SplitURL splits a Maven-style SCM URL into backend name and plain URL.
// Bare URLs default to the svn backend.
func SplitURL(raw string) (backend, url string, err error) {
	if !strings.HasPrefix(raw, scmPrefix) {
		return "svn", raw, nil
	}
	rest := strings.TrimPrefix(raw, scmPrefix)
	backend, url, found := strings.Cut(rest, ":")
	if !found || url == "" {
		return "", "", errors.Newf(errors.ErrVcsURL, "malformed scm url %q", raw)
	}
	switch backend {
	case "svn", "git":
		return backend, url, nil
	default:
		return "", "", errors.Newf(errors.ErrVcsURL, "unsupported scm backend %q in %q", backend, raw)
	}
}

// NewProvider returns the provider for a (possibly scm:-prefixed) URL along
// with the plain URL the provider expects.
func NewProvider(raw string, creds Credentials) (Provider, string, error) {
	backend, url, err := SplitURL(raw)
	if err != nil {
		return nil, "", err
	}
	switch backend {
	case "git":
		return NewGitProvider(creds), url, nil
	default:
		return NewSvnProvider(creds), url, nil
	}
}

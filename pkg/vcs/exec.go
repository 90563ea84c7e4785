package vcs

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

// runner executes an external command in dir and returns its combined
// output. Providers take a runner so tests can intercept command lines
// without spawning processes.
type runner func(ctx context.Context, dir, name string, args ...string) (string, error)

// execRunner is the production runner backed by os/exec.
func execRunner(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// relativize maps absolute file paths to paths relative to dir, as the
// backend executables expect. Paths outside dir are passed through
// unchanged.
func relativize(dir string, files []string) []string {
	rels := make([]string, 0, len(files))
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil || strings.HasPrefix(rel, "..") {
			rels = append(rels, file)
			continue
		}
		rels = append(rels, rel)
	}
	return rels
}

// Package pathops provides the directory lifecycle helpers shared by the
// staging and promotion workflows: destructive recreate of a directory and
// guarded file copies with error translation.
package pathops

import (
	"io"
	"os"
	"path/filepath"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
)

// ResetDirectory deletes path if it exists and then recreates it, including
// parents. Calling it twice in a row is not an error: the second call deletes
// the empty directory and recreates it.
func ResetDirectory(path string) error {
	logger := logging.GetLogger("pathops")

	if _, err := os.Stat(path); err == nil {
		if err := os.RemoveAll(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Unable to remove directory")
			return errors.Wrapf(err, errors.ErrDirReset, "unable to remove directory %s", path).
				WithDetail("path", path)
		}
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Unable to create directory")
		return errors.Wrapf(err, errors.ErrDirCreate, "unable to create directory %s", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Msg("Directory reset")
	return nil
}

// EnsureDirectory creates path (and parents) if it does not already exist,
// leaving an existing directory untouched.
func EnsureDirectory(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "unable to create directory %s", path).
			WithDetail("path", path)
	}
	return nil
}

// ListFiles returns the names of the regular files at the top level of dir,
// in directory order. Subdirectories are skipped.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirList, "unable to list directory %s", dir).
			WithDetail("path", dir)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// CopyFile copies from to to byte-for-byte, creating parent directories
// implicitly. An existing destination is overwritten unconditionally.
func CopyFile(from, to string) error {
	logger := logging.GetLogger("pathops")

	src, err := os.Open(from)
	if err != nil {
		return copyError(err, from, to)
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return copyError(err, from, to)
	}

	dst, err := os.Create(to)
	if err != nil {
		return copyError(err, from, to)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return copyError(err, from, to)
	}
	if err := dst.Close(); err != nil {
		return copyError(err, from, to)
	}

	logger.Trace().Str("from", from).Str("to", to).Msg("Copied file")
	return nil
}

func copyError(err error, from, to string) error {
	logger := logging.GetLogger("pathops")
	logger.Error().Err(err).Str("from", from).Str("to", to).Msg("Unable to copy file")
	return errors.Wrapf(err, errors.ErrFileCopy, "unable to copy file %s to %s", from, to).
		WithDetail("from", from).
		WithDetail("to", to)
}

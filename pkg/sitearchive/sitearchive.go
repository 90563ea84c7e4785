// Package sitearchive produces the compressed site bundle that is staged next
// to the release artifacts. It walks the generated site tree and writes every
// file into a single zip whose entry names are relative to the site root, so
// the archive restores as a self-contained tree.
package sitearchive

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
)

// ArchiveName is the file name of the site bundle inside the working
// directory.
const ArchiveName = "site.zip"

// Entry is a single filesystem entry observed under the site root.
type Entry struct {
	Path  string
	IsDir bool
}

// Enumerate walks siteRoot depth-first, parent before children, and returns
// every file and directory beneath it (the root itself is not included).
// Each call performs a fresh walk; a concurrent change to the tree between
// calls may yield a different result.
func Enumerate(siteRoot string) ([]Entry, error) {
	if _, err := os.Stat(siteRoot); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSiteMissing,
			"site directory %s does not exist; run the site build first", siteRoot).
			WithDetail("siteRoot", siteRoot)
	}

	var entries []Entry
	err := filepath.WalkDir(siteRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == siteRoot {
			return nil
		}
		entries = append(entries, Entry{Path: path, IsDir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to enumerate site directory %s", siteRoot).
			WithDetail("siteRoot", siteRoot)
	}
	return entries, nil
}

// Archive writes the non-directory entries into a single zip at outputFile.
// Each entry's archive path is its path relative to siteRoot with forward
// slashes. Entry order inside the archive is the enumeration order.
func Archive(siteRoot, outputFile string, entries []Entry) error {
	logger := logging.GetLogger("sitearchive")

	out, err := os.Create(outputFile)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to create archive %s", outputFile).
			WithDetail("outputFile", outputFile)
	}
	defer func() { _ = out.Close() }()

	zw := zip.NewWriter(out)
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		if err := addToArchive(zw, siteRoot, entry.Path); err != nil {
			_ = zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to finalize archive %s", outputFile).
			WithDetail("outputFile", outputFile)
	}

	logger.Info().Str("archive", outputFile).Int("entries", len(entries)).Msg("Site archive written")
	return nil
}

// Compress enumerates siteRoot and writes the site bundle into workingDir,
// returning the archive path.
func Compress(siteRoot, workingDir string) (string, error) {
	entries, err := Enumerate(siteRoot)
	if err != nil {
		return "", err
	}
	outputFile := filepath.Join(workingDir, ArchiveName)
	if err := Archive(siteRoot, outputFile, entries); err != nil {
		return "", err
	}
	return outputFile, nil
}

func addToArchive(zw *zip.Writer, siteRoot, path string) error {
	rel, err := filepath.Rel(siteRoot, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to relativize %s against %s", path, siteRoot)
	}

	src, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to read site file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = src.Close() }()

	w, err := zw.Create(filepath.ToSlash(rel))
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to add %s to archive", rel)
	}
	if _, err := io.Copy(w, src); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate,
			"unable to write %s into archive", rel)
	}
	return nil
}

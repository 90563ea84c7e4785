// Package classify assigns build artifacts to their destination bucket in the
// distribution tree based on file naming conventions.
//
// Artifact names follow the `artifact-version-src.tar.gz` /
// `artifact-version-bin.zip` convention. Substring matching is deliberately
// permissive to tolerate naming variants across sub-projects, at the cost of
// being unable to distinguish a file that coincidentally contains "src" in an
// unrelated position. This is an accepted ambiguity of the convention.
package classify

import (
	"strings"

	"github.com/diststage/diststage/pkg/logging"
)

// Bucket identifies the destination of an artifact inside the staged
// distribution tree.
type Bucket string

const (
	// BucketSource routes the file into the source/ subtree
	BucketSource Bucket = "SOURCE"

	// BucketBinary routes the file into the binaries/ subtree
	BucketBinary Bucket = "BINARY"

	// BucketExcluded marks internal bookkeeping files that must not be
	// copied into the distribution tree
	BucketExcluded Bucket = "METADATA_EXCLUDED"

	// BucketRoot routes the file to the top of the staging tree, e.g.
	// release notes or the compressed site archive
	BucketRoot Bucket = "ROOT"
)

// exclusionTerms name internal bookkeeping entries that already belong to the
// checkout or the build machinery.
var exclusionTerms = []string{"scm", "sha1.properties", "sha256.properties"}

// Artifact is a file path plus the bucket derived from its base name.
// Classification is a pure function of the name; instances are never mutated
// after construction.
type Artifact struct {
	Path   string
	Bucket Bucket
}

// Classify returns the bucket for a file name. Exclusion terms win over the
// src/bin conventions so that bookkeeping files are never staged, then "src"
// is checked before "bin". Callers must pass regular file names only;
// directory names are not classified.
func Classify(name string) Bucket {
	for _, term := range exclusionTerms {
		if strings.Contains(name, term) {
			return BucketExcluded
		}
	}
	if strings.Contains(name, "src") {
		return BucketSource
	}
	if strings.Contains(name, "bin") {
		return BucketBinary
	}
	return BucketRoot
}

// ClassifyAll classifies every file name in names, preserving input order.
func ClassifyAll(names []string) []Artifact {
	logger := logging.GetLogger("classify")

	artifacts := make([]Artifact, 0, len(names))
	for _, name := range names {
		bucket := Classify(name)
		logger.Debug().Str("file", name).Str("bucket", string(bucket)).Msg("Classified artifact")
		artifacts = append(artifacts, Artifact{Path: name, Bucket: bucket})
	}
	return artifacts
}

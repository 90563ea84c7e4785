package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		bucket Bucket
	}{
		{"commons-foo-1.0-src.tar.gz", BucketSource},
		{"commons-foo-1.0-src.zip", BucketSource},
		{"commons-foo-1.0-bin.tar.gz", BucketBinary},
		{"commons-foo-1.0-bin.zip", BucketBinary},
		{"sha1.properties", BucketExcluded},
		{"sha256.properties", BucketExcluded},
		{"scm", BucketExcluded},
		{"RELEASE-NOTES.txt", BucketRoot},
		{"site.zip", BucketRoot},
		{"CHANGES.html", BucketRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bucket, Classify(tt.name))
		})
	}
}

func TestClassifySubstringIsPermissive(t *testing.T) {
	// The convention matches anywhere in the name, not only the
	// -src/-bin suffix position. Accepted ambiguity of the convention.
	assert.Equal(t, BucketSource, Classify("srclist.txt"))
	assert.Equal(t, BucketBinary, Classify("binding-notes.txt"))
	assert.Equal(t, BucketRoot, Classify("subproject-notes.txt"))
}

func TestClassifyExclusionWinsOverSrcAndBin(t *testing.T) {
	// Bookkeeping files are never staged, even when their names also
	// carry the src/bin convention.
	assert.Equal(t, BucketExcluded, Classify("foo-src.tar.gz.sha1.properties"))
	assert.Equal(t, BucketExcluded, Classify("foo-bin.zip.sha256.properties"))
}

func TestClassifySrcWinsOverBin(t *testing.T) {
	assert.Equal(t, BucketSource, Classify("foo-src-bin.tar.gz"))
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	names := []string{
		"foo-1.0-src.zip",
		"foo-1.0-bin.tar.gz",
		"sha1.properties",
		"RELEASE-NOTES.txt",
	}

	artifacts := ClassifyAll(names)

	assert.Len(t, artifacts, len(names))
	assert.Equal(t, BucketSource, artifacts[0].Bucket)
	assert.Equal(t, BucketBinary, artifacts[1].Bucket)
	assert.Equal(t, BucketExcluded, artifacts[2].Bucket)
	assert.Equal(t, BucketRoot, artifacts[3].Bucket)
	for i, name := range names {
		assert.Equal(t, name, artifacts[i].Path)
	}
}

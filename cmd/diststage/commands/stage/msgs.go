package stage

// Message constants
const (
	MsgShort = "Stage the distribution artifacts for a release vote"
	MsgLong  = `The 'stage' command checks out the staging distribution location, copies the
project's built artifacts into it split by source and binary distributions,
generates the HEADER.html and README.html pages and copies the release notes,
then adds and commits everything in a single commit.

With --dry-run the checkout and local staging still happen, but nothing is
added or committed.`

	MsgExample = `  # Stage the artifacts from the current project
  diststage stage

  # Preview the staged layout without committing
  diststage stage --dry-run

  # Stage a project that lives elsewhere
  diststage stage --dir /path/to/project`
)

package compresssite

// Message constants
const (
	MsgShort = "Archive the built documentation site into site.zip"
	MsgLong  = `The 'compress-site' command walks the built documentation site and archives
it into site.zip in the working directory, so it can be staged alongside the
distribution artifacts.

The site must already have been built; a missing site directory is an error.`

	MsgExample = `  # Archive target/site into the working directory
  diststage compress-site

  # Archive the site of a project that lives elsewhere
  diststage compress-site --dir /path/to/project`
)

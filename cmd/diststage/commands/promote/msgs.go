package promote

// Message constants
const (
	MsgShort = "Check out the staging and release locations after a vote"
	MsgLong  = `The 'promote' command checks out both the staging and the release
distribution locations into independent working copies under the working
directory. Moving the accepted artifacts from the staging side to the release
side and committing the result is still a manual step.`

	MsgExample = `  # Check out both distribution locations
  diststage promote

  # Promote a project that lives elsewhere
  diststage promote --dir /path/to/project`
)

package commands

// Message constants
const (
	MsgRootShort = "Stage and promote project distribution artifacts"
	MsgRootLong  = `diststage prepares a project's distribution artifacts for a release vote.

It classifies the built artifacts into source and binary sets, lays them out
in a checkout of the staging distribution area together with generated
HEADER.html and README.html pages and the release notes, and commits the
result. After a successful vote it checks out both the staging and release
areas so the accepted artifacts can be moved across.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without adding or committing anything"
	MsgFlagDir     = "Project directory containing the build output and configuration"
)

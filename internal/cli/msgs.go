package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Run build scripts together with their dependencies"

	// Menu
	MsgNoScripts        = "No executable scripts available."
	MsgInvalidSelection = "Invalid selection."
	MsgExecutingScript  = "Executing script: %s\n"

	// Plan and report
	MsgPlanItem       = "%d. %s\n"
	MsgReportWritten  = "Status report written to %s"
	MsgReportToStdout = "-"

	// Listing
	MsgListTitle        = "# Build scripts\n\n"
	MsgListScript       = "## %s\n\n"
	MsgListRepo         = "- repository: `%s`\n"
	MsgListBranch       = "- branch: `%s`\n"
	MsgListUnconfigured = "- repository: _not configured_\n"
	MsgListDeps         = "- depends on: %s\n"
	MsgListNoDeps       = "- depends on: nothing\n"

	// Version output
	MsgVersionTemplate = "buildscripts %s (commit %s, built %s)\n"

	// Error messages
	MsgErrPlanNeedsScript = "--plan needs a script name"
	MsgErrConfig          = "Configuration error: %v"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Read the script configuration from this file only"
	MsgFlagList    = "List scripts with their repositories and dependencies"
	MsgFlagPlan    = "Print the execution order without running anything"
	MsgFlagReport  = "Write the final status to a .yaml, .toml or .json file (- prints a table)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)

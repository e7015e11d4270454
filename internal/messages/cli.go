package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command usage line.
	RootUse = "gover [stable|prerelease]"
	// RootShort is the short description for the root command.
	RootShort = "Install the latest Go toolchain for a release channel"
	RootLong  = "gover downloads the latest Go toolchain build for the requested release\n" +
		"channel (stable or prerelease) from the official release index, extracts it\n" +
		"to a version-named directory, and points the channel symlink at it.\n" +
		"If the resolved version is already installed, gover exits without doing work."

	RootFlagDebug  = "Echo each step to stderr before executing it"
	RootFlagDryRun = "Echo mutating steps to stderr and skip them (index queries still run)"

	UnknownChannelFmt = "unknown channel %q (expected stable or prerelease)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command usage line.
	ListUse        = "list"
	ListShort      = "List installed Go toolchain versions"
	ListFlagRemote = "List versions from the release index instead of installed ones"
	ListNone       = "no Go toolchain versions installed"
	ListLineFmt    = "%s\n"
	ListMarkedFmt  = "%s (%s)\n"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check that the environment can install Go toolchains"

	DoctorCheckingFmt       = "Checking environment (install root %s)\n"
	DoctorResultLineFmt     = "[%s] %s: %s\n"
	DoctorRecommendationFmt = "       hint: %s\n"
	DoctorStatusOKLabel     = "OK"
	DoctorStatusWarnLabel   = "WARN"
	DoctorStatusFailLabel   = "FAIL"
	DoctorFailureSummary    = "Environment check failed."
	DoctorFailureError      = "environment check failed"
	DoctorSuccessSummary    = "Environment check passed."
	DoctorCheckNamePlat     = "platform"
	DoctorCheckNameRoot     = "install root"
	DoctorCheckNameNetwork  = "release index"
)
